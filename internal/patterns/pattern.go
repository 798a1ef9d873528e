package patterns

import "quill/internal/token"

// Pattern matches a prefix of toks. It returns the number of tokens consumed
// and whether it matched; a failed match carries no partial state.
type Pattern interface {
	Matches(toks []token.Token, src []rune) (int, bool)
}

// Func adapts a function into a Pattern.
type Func func(toks []token.Token, src []rune) (int, bool)

func (f Func) Matches(toks []token.Token, src []rune) (int, bool) { return f(toks, src) }

// single matches exactly one token satisfying pred.
type single func(t token.Token, src []rune) bool

func (p single) Matches(toks []token.Token, src []rune) (int, bool) {
	if len(toks) == 0 || !p(toks[0], src) {
		return 0, false
	}
	return 1, true
}

// TokenPredicate matches one token satisfying pred.
func TokenPredicate(pred func(t token.Token, src []rune) bool) Pattern {
	return single(pred)
}
