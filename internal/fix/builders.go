package fix

import (
	"quill/internal/linting"
	"quill/internal/source"
)

// TextEdit replaces the runes under Span with NewText. OldText, when set,
// guards the edit: it is applied only if the current text under Span matches.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Replace creates an edit that swaps span for text.
func Replace(span source.Span, text, guard string) TextEdit {
	return TextEdit{Span: span, NewText: text, OldText: guard}
}

// Insert creates an edit that inserts text at a zero-width position.
func Insert(at uint32, text string) TextEdit {
	return TextEdit{Span: source.Span{Start: at, End: at}, NewText: text}
}

// Delete creates an edit that removes span.
func Delete(span source.Span, guard string) TextEdit {
	return TextEdit{Span: span, OldText: guard}
}

// FromSuggestion materialises a suggestion for a lint over src.
func FromSuggestion(l linting.Lint, s linting.Suggestion, src []rune) TextEdit {
	guard := l.Span.ContentString(src)
	switch s.Kind {
	case linting.SuggestInsertAfter:
		return Insert(l.Span.End, s.Text)
	case linting.SuggestRemove:
		return Delete(l.Span, guard)
	}
	return Replace(l.Span, s.Text, guard)
}
