package testkit

import (
	"testing"

	"quill/internal/source"
	"quill/internal/token"
)

func TestCheckTokenInvariants(t *testing.T) {
	src := []rune("hi there")
	good := []token.Token{
		token.NewWord(source.Span{Start: 0, End: 2}, nil),
		token.NewSpace(source.Span{Start: 2, End: 3}, 1),
		token.NewWord(source.Span{Start: 3, End: 8}, nil),
	}
	if err := CheckTokenInvariants(good, src); err != nil {
		t.Fatalf("valid tokens rejected: %v", err)
	}

	cases := map[string][]token.Token{
		"gap": {
			token.NewWord(source.Span{Start: 0, End: 2}, nil),
			token.NewWord(source.Span{Start: 3, End: 8}, nil),
		},
		"short": good[:2],
		"empty span": {
			token.NewWord(source.Span{Start: 0, End: 0}, nil),
		},
		"count on word": {
			{Span: source.Span{Start: 0, End: 8}, Kind: token.Word, Count: 2},
		},
	}
	for name, toks := range cases {
		if err := CheckTokenInvariants(toks, src); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if err := CheckTokenInvariants(nil, nil); err != nil {
		t.Errorf("empty source: %v", err)
	}
}
