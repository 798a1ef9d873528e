package linting

import (
	"fmt"
	"slices"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"quill/internal/source"
)

// SuggestionKind tells how a suggestion edits the lint span.
type SuggestionKind uint8

const (
	// SuggestReplace replaces the span with Text.
	SuggestReplace SuggestionKind = iota
	// SuggestReplaceMatchCase replaces the span with Template recast to the
	// casing of the original text; Text holds the resolved result.
	SuggestReplaceMatchCase
	// SuggestRemove deletes the span.
	SuggestRemove
	// SuggestInsertAfter inserts Text after the span.
	SuggestInsertAfter
)

func (k SuggestionKind) String() string {
	switch k {
	case SuggestReplace:
		return "replace"
	case SuggestReplaceMatchCase:
		return "replace-match-case"
	case SuggestRemove:
		return "remove"
	case SuggestInsertAfter:
		return "insert-after"
	}
	return "unknown"
}

// Suggestion is a candidate edit of a lint's span.
type Suggestion struct {
	Kind     SuggestionKind
	Text     string
	Template string
}

func ReplaceWith(text string) Suggestion {
	return Suggestion{Kind: SuggestReplace, Text: text}
}

// ReplaceWithMatchCase recasts template to follow the casing of original.
func ReplaceWithMatchCase(template string, original []rune) Suggestion {
	return Suggestion{
		Kind:     SuggestReplaceMatchCase,
		Text:     MatchCase(template, string(original)),
		Template: template,
	}
}

func Remove() Suggestion {
	return Suggestion{Kind: SuggestRemove}
}

func InsertAfter(text string) Suggestion {
	return Suggestion{Kind: SuggestInsertAfter, Text: text}
}

// Edit returns the span to replace and the replacement text.
func (s Suggestion) Edit(span source.Span) (source.Span, string) {
	switch s.Kind {
	case SuggestRemove:
		return span, ""
	case SuggestInsertAfter:
		return source.Span{Start: span.End, End: span.End}, s.Text
	}
	return span, s.Text
}

// Apply returns a copy of src with the suggestion applied to span.
func (s Suggestion) Apply(span source.Span, src []rune) []rune {
	at, text := s.Edit(span)
	start := min(int(at.Start), len(src))
	end := min(int(at.End), len(src))
	out := make([]rune, 0, len(src)-(end-start)+len(text))
	out = append(out, src[:start]...)
	out = append(out, []rune(text)...)
	return append(out, src[end:]...)
}

func (s Suggestion) String() string {
	switch s.Kind {
	case SuggestRemove:
		return "Remove"
	case SuggestInsertAfter:
		return fmt.Sprintf("Insert “%s”", s.Text)
	}
	return fmt.Sprintf("Replace with “%s”", s.Text)
}

// Casing is the capitalization class of a piece of text.
type Casing uint8

const (
	CasingMixed Casing = iota
	CasingLower
	CasingUpper
	CasingCapitalized
)

// ClassifyCasing looks at letters only. A single uppercase letter counts as
// capitalized; text without letters is lowercase.
func ClassifyCasing(s string) Casing {
	var letters []rune
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return CasingLower
	}
	isLower := func(r rune) bool { return !unicode.IsUpper(r) }
	switch {
	case !slices.ContainsFunc(letters, unicode.IsUpper):
		return CasingLower
	case unicode.IsUpper(letters[0]) && !slices.ContainsFunc(letters[1:], unicode.IsUpper):
		return CasingCapitalized
	case !slices.ContainsFunc(letters, isLower):
		return CasingUpper
	}
	return CasingMixed
}

// MatchCase recasts template to the casing class of original. Mixed-case
// originals leave the template untouched.
func MatchCase(template, original string) string {
	switch ClassifyCasing(original) {
	case CasingLower:
		return cases.Lower(language.Und).String(template)
	case CasingUpper:
		return cases.Upper(language.Und).String(template)
	case CasingCapitalized:
		return capitalizeFirst(cases.Lower(language.Und).String(template))
	}
	return template
}

func capitalizeFirst(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if unicode.IsLetter(r) {
			rs[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(rs)
}
