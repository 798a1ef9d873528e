package token

// Kind represents the category of a prose token.
type Kind uint8

const (
	// Unlintable covers a region no rule may look into (code, markup, URLs).
	Unlintable Kind = iota
	// Word is a run of letters, optionally with inner apostrophes and digits.
	Word
	// Number is a numeric literal with an optional ordinal suffix.
	Number
	// Punctuation is a single punctuation mark, see Punct.
	Punctuation
	// Space is a run of horizontal whitespace.
	Space
	// Newline is a run of line breaks inside a paragraph.
	Newline
	// ParagraphBreak separates paragraphs (two or more line breaks).
	ParagraphBreak
)

var kindNames = [...]string{
	Unlintable:     "Unlintable",
	Word:           "Word",
	Number:         "Number",
	Punctuation:    "Punctuation",
	Space:          "Space",
	Newline:        "Newline",
	ParagraphBreak: "ParagraphBreak",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
