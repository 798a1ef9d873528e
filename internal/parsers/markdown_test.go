package parsers

import (
	"testing"

	"quill/internal/token"
)

func TestMarkdownOpaqueRegions(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		words      []string
		unlintable []string
	}{
		{
			name:       "inline code",
			in:         "Run `lets go` now",
			words:      []string{"Run", "now"},
			unlintable: []string{"`lets go`"},
		},
		{
			name:       "double backtick code",
			in:         "A ``x ` y`` b",
			words:      []string{"A", "b"},
			unlintable: []string{"``x ` y``"},
		},
		{
			name:       "fenced code",
			in:         "Intro\n\n```go\nlets go\n```\n\nOutro",
			words:      []string{"Intro", "Outro"},
			unlintable: []string{"```go\nlets go\n```"},
		},
		{
			name:       "unclosed fence runs to end",
			in:         "Intro\n~~~\ncode here",
			words:      []string{"Intro"},
			unlintable: []string{"~~~\ncode here"},
		},
		{
			name:       "link text stays prose",
			in:         "See [the docs](https://x.io/a) please",
			words:      []string{"See", "the", "docs", "please"},
			unlintable: []string{"[", "](https://x.io/a)"},
		},
		{
			name:       "image",
			in:         "![a cat](cat.png)",
			words:      []string{"a", "cat"},
			unlintable: []string{"![", "](cat.png)"},
		},
		{
			name:       "heading and emphasis",
			in:         "## Some **bold** text",
			words:      []string{"Some", "bold", "text"},
			unlintable: []string{"##", "**", "**"},
		},
		{
			name:       "list and quote markers",
			in:         "> - [x] done\n1. first",
			words:      []string{"done", "first"},
			unlintable: []string{">", "-", "[x]", "1."},
		},
		{
			name:       "html",
			in:         "a <span class=\"x\">b</span> <!-- note\nmore --> c",
			words:      []string{"a", "b", "c"},
			unlintable: []string{"<span class=\"x\">", "</span>", "<!-- note\nmore -->"},
		},
		{
			name:       "front matter",
			in:         "---\ntitle: Hi\n---\nBody",
			words:      []string{"Body"},
			unlintable: []string{"---\ntitle: Hi\n---"},
		},
		{
			name:       "snake case is not emphasis",
			in:         "call snake_case here",
			words:      []string{"call", "snake", "case", "here"},
			unlintable: nil,
		},
		{
			name:       "escape",
			in:         `a \* b`,
			words:      []string{"a", "b"},
			unlintable: []string{`\*`},
		},
		{
			name:       "thematic break",
			in:         "a\n\n***\n\nb",
			words:      []string{"a", "b"},
			unlintable: []string{"***"},
		},
		{
			name:       "bare url",
			in:         "see http://a.b/c.",
			words:      []string{"see"},
			unlintable: []string{"http://a.b/c"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, src := lex(t, Markdown{}, tc.in)
			if got := words(toks, src); !equalStrings(got, tc.words) {
				t.Errorf("words = %q, want %q\n%s", got, tc.words, dump(toks, src))
			}
			if got := unlintable(toks, src); !equalStrings(got, tc.unlintable) {
				t.Errorf("unlintable = %q, want %q\n%s", got, tc.unlintable, dump(toks, src))
			}
		})
	}
}

func TestMarkdownParagraphs(t *testing.T) {
	toks, src := lex(t, Markdown{}, "First para.\n\nSecond para.")
	expectKinds(t, toks, src,
		token.Word, token.Space, token.Word, token.Punctuation,
		token.ParagraphBreak,
		token.Word, token.Space, token.Word, token.Punctuation)
}

func TestMarkdownUnmatchedBrackets(t *testing.T) {
	toks, src := lex(t, Markdown{}, "a [sic] b < c")
	if got := unlintable(toks, src); len(got) != 0 {
		t.Fatalf("plain brackets must stay prose: %q", got)
	}
}
