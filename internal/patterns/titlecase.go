package patterns

import (
	"slices"

	"quill/internal/dict"
	"quill/internal/titlecase"
	"quill/internal/token"
)

// IsNotTitleCase matches what inner matches, but only when the matched text
// differs from its title-cased form.
type IsNotTitleCase struct {
	inner Pattern
	dict  dict.Dictionary
}

func NewIsNotTitleCase(inner Pattern, d dict.Dictionary) *IsNotTitleCase {
	return &IsNotTitleCase{inner: inner, dict: d}
}

func (p *IsNotTitleCase) Matches(toks []token.Token, src []rune) (int, bool) {
	n, ok := p.inner.Matches(toks, src)
	if !ok || n == 0 {
		return 0, false
	}
	matched := toks[:n]
	sp, _ := token.SpanOf(matched)
	if slices.Equal(titlecase.Make(matched, src, p.dict), sp.Content(src)) {
		return 0, false
	}
	return n, true
}
