package linting

// LintKind classifies what a lint is about.
type LintKind uint8

const (
	KindMiscellaneous LintKind = iota
	KindSpelling
	KindCapitalization
	KindStyle
	KindFormatting
	KindRepetition
	KindEnhancement
	KindReadability
	KindWordChoice
)

var kindNames = [...]string{
	KindMiscellaneous:  "Miscellaneous",
	KindSpelling:       "Spelling",
	KindCapitalization: "Capitalization",
	KindStyle:          "Style",
	KindFormatting:     "Formatting",
	KindRepetition:     "Repetition",
	KindEnhancement:    "Enhancement",
	KindReadability:    "Readability",
	KindWordChoice:     "WordChoice",
}

func (k LintKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseLintKind is the inverse of String. Unknown names map to KindMiscellaneous.
func ParseLintKind(s string) (LintKind, bool) {
	for i, name := range kindNames {
		if name == s {
			return LintKind(i), true
		}
	}
	return KindMiscellaneous, false
}
