package parsers

import (
	"strings"
	"testing"

	"quill/internal/token"
)

// lex runs p over s and fails the test if the tokens do not partition s.
func lex(t *testing.T, p Parser, s string) ([]token.Token, []rune) {
	t.Helper()
	src := []rune(s)
	toks := p.Parse(src)
	if !token.IsPartition(toks, len(src)) {
		t.Fatalf("tokens do not partition %q:\n%s", s, dump(toks, src))
	}
	return toks, src
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func dump(toks []token.Token, src []rune) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.String())
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(t.Text(src), "\n", `\n`))
		b.WriteString("\n")
	}
	return b.String()
}

func expectKinds(t *testing.T, toks []token.Token, src []rune, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d:\n%s", len(got), len(want), dump(toks, src))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v:\n%s", i, got[i], want[i], dump(toks, src))
		}
	}
}

// words returns the texts of all word tokens.
func words(toks []token.Token, src []rune) []string {
	var out []string
	for _, t := range toks {
		if t.IsWord() {
			out = append(out, t.Text(src))
		}
	}
	return out
}

func unlintable(toks []token.Token, src []rune) []string {
	var out []string
	for _, t := range toks {
		if t.IsUnlintable() {
			out = append(out, t.Text(src))
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
