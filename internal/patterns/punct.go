package patterns

import "quill/internal/token"

// Whitespace matches one or more Space or Newline tokens. Paragraph breaks
// are not whitespace.
func Whitespace() Pattern {
	return Func(func(toks []token.Token, _ []rune) (int, bool) {
		n := 0
		for n < len(toks) && toks[n].IsWhitespace() {
			n++
		}
		return n, n > 0
	})
}

// PunctuationOf matches one punctuation token of kind p.
func PunctuationOf(p token.Punct) Pattern {
	return single(func(t token.Token, _ []rune) bool { return t.IsPunct(p) })
}

func Hyphen() Pattern { return PunctuationOf(token.Hyphen) }
func Period() Pattern { return PunctuationOf(token.Period) }
