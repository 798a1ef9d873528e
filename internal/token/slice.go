package token

import (
	"iter"

	"quill/internal/source"
)

// SpanOf returns the span covering toks. ok is false for an empty slice.
func SpanOf(toks []Token) (sp source.Span, ok bool) {
	if len(toks) == 0 {
		return source.Span{}, false
	}
	return source.Span{Start: toks[0].Span.Start, End: toks[len(toks)-1].Span.End}, true
}

// WordLikes yields the index and value of every word or number token.
func WordLikes(toks []Token) iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range toks {
			if !t.IsWordLike() {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// ContainsUnlintable reports whether any token is Unlintable.
func ContainsUnlintable(toks []Token) bool {
	for _, t := range toks {
		if t.Kind == Unlintable {
			return true
		}
	}
	return false
}

// IsPartition reports whether toks are contiguous and cover [0, n).
// An empty slice partitions only an empty buffer.
func IsPartition(toks []Token, n int) bool {
	if len(toks) == 0 {
		return n == 0
	}
	var at uint32
	for _, t := range toks {
		if t.Span.Start != at || t.Span.End < t.Span.Start {
			return false
		}
		if t.Span.Empty() && n > 0 {
			return false
		}
		at = t.Span.End
	}
	return int(at) == n
}
