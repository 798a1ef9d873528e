package token_test

import (
	"testing"

	"quill/internal/source"
	"quill/internal/token"
)

func sample() []token.Token {
	// "Hi 2, x"
	return []token.Token{
		token.NewWord(source.Span{Start: 0, End: 2}, nil),
		token.NewSpace(source.Span{Start: 2, End: 3}, 1),
		token.NewNumber(source.Span{Start: 3, End: 4}, token.Numeric{Value: 2}),
		token.NewPunct(source.Span{Start: 4, End: 5}, token.Comma),
		token.NewSpace(source.Span{Start: 5, End: 6}, 1),
		token.NewWord(source.Span{Start: 6, End: 7}, nil),
	}
}

func TestSpanOf(t *testing.T) {
	toks := sample()
	sp, ok := token.SpanOf(toks[1:4])
	if !ok || sp != (source.Span{Start: 2, End: 5}) {
		t.Fatalf("SpanOf = %v,%v", sp, ok)
	}
	if _, ok := token.SpanOf(nil); ok {
		t.Fatalf("empty slice has no span")
	}
}

func TestWordLikes(t *testing.T) {
	var idx []int
	for i := range token.WordLikes(sample()) {
		idx = append(idx, i)
	}
	want := []int{0, 2, 5}
	if len(idx) != len(want) {
		t.Fatalf("got %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("got %v, want %v", idx, want)
		}
	}
}

func TestIsPartition(t *testing.T) {
	toks := sample()
	if !token.IsPartition(toks, 7) {
		t.Fatalf("sample must partition 7 runes")
	}
	if token.IsPartition(toks, 8) {
		t.Fatalf("sample does not cover 8 runes")
	}
	gap := append([]token.Token{}, toks[0], toks[2])
	if token.IsPartition(gap, 4) {
		t.Fatalf("gapped tokens are not a partition")
	}
	if !token.IsPartition(nil, 0) {
		t.Fatalf("empty tokens partition empty buffer")
	}
}
