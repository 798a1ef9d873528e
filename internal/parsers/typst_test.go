package parsers

import (
	"testing"

	"quill/internal/token"
)

func TestTypstNumber(t *testing.T) {
	toks, src := lex(t, Typst{}, "12 is larger than 11, but much less than 11!")
	W, S, N, P := token.Word, token.Space, token.Number, token.Punctuation
	expectKinds(t, toks, src,
		N, S, W, S, W, S, W, S, N, P, S, W, S, W, S, W, S, W, S, N, P)
	if toks[0].Num.Value != 12 || !toks[len(toks)-1].IsPunct(token.Bang) {
		t.Fatalf("unexpected payloads:\n%s", dump(toks, src))
	}
}

func TestTypstMathUnlintable(t *testing.T) {
	toks, src := lex(t, Typst{}, "$12 > 11$, $12 << 11!$")
	expectKinds(t, toks, src, token.Unlintable, token.Punctuation, token.Space, token.Unlintable)
}

func TestTypstDict(t *testing.T) {
	in := "#let dict = (\n  name: \"Typst\",\n  born: 2019,\n)"
	toks, src := lex(t, Typst{}, in)
	expectKinds(t, toks, src, token.Unlintable, token.Word, token.Unlintable)
	if got := toks[1].Text(src); got != "Typst" {
		t.Fatalf("string contents = %q", got)
	}
}

func TestTypstString(t *testing.T) {
	toks, src := lex(t, Typst{}, `#let ident = "This is a string"`)
	W, S := token.Word, token.Space
	expectKinds(t, toks, src, token.Unlintable, W, S, W, S, W, S, W, token.Unlintable)
}

func TestTypstNonAdjacentSpaces(t *testing.T) {
	toks, src := lex(t, Typst{}, `#authors_slice.join(", ", last: ", and ")  bob`)
	U, P, S, W := token.Unlintable, token.Punctuation, token.Space, token.Word
	expectKinds(t, toks, src, U, P, S, U, P, S, W, S, U, S, W)
	if toks[9].Count != 2 {
		t.Fatalf("space before bob = %d, want 2", toks[8].Count)
	}
}

func TestTypstHeading(t *testing.T) {
	toks, src := lex(t, Typst{}, "= Header\n  Paragraph")
	expectKinds(t, toks, src, token.Unlintable, token.Space, token.Word, token.Newline, token.Word)
	if toks[2].Text(src) != "Header" || toks[4].Text(src) != "Paragraph" {
		t.Fatalf("unexpected words:\n%s", dump(toks, src))
	}
}

func TestTypstParagraphBreak(t *testing.T) {
	toks, src := lex(t, Typst{}, "Paragraph\n\n   Paragraph")
	expectKinds(t, toks, src, token.Word, token.ParagraphBreak, token.Word)
}

func TestTypstLabel(t *testing.T) {
	toks, src := lex(t, Typst{}, "Text\n<label>\nParagraph")
	expectKinds(t, toks, src, token.Word, token.Newline, token.Unlintable, token.Newline, token.Word)
}

func TestTypstPossessive(t *testing.T) {
	toks, src := lex(t, Typst{}, "group’s\n  writing")
	expectKinds(t, toks, src, token.Word, token.Newline, token.Word)
	if toks[0].Word == nil || !toks[0].Word.IsPossessiveNoun() {
		t.Fatalf("possessive word not tagged: %v", toks[0])
	}
	if toks[2].Word != nil {
		t.Fatalf("plain word must stay unresolved")
	}
	if toks[2].Text(src) != "writing" {
		t.Fatalf("got %q", toks[2].Text(src))
	}
}

func TestTypstOpaqueRegions(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		words      []string
		unlintable []string
	}{
		{
			name:       "content block in call",
			in:         "#text(fill: red)[Hello world] done",
			words:      []string{"Hello", "world", "done"},
			unlintable: []string{"#text(fill: red)[", "]"},
		},
		{
			name:       "reference and label",
			in:         "See @fig-one. <sec:x>",
			words:      []string{"See"},
			unlintable: []string{"@fig-one", "<sec:x>"},
		},
		{
			name:       "raw",
			in:         "Use `lets go` and ```rust\nfn x\n``` ok",
			words:      []string{"Use", "and", "ok"},
			unlintable: []string{"`lets go`", "```rust\nfn x\n```"},
		},
		{
			name:       "comments",
			in:         "a // lets go\nb /* c /* d */ e */ f",
			words:      []string{"a", "b", "f"},
			unlintable: []string{"// lets go", "/* c /* d */ e */"},
		},
		{
			name:       "emphasis markers",
			in:         "*bold* and _emph_",
			words:      []string{"bold", "and", "emph"},
			unlintable: []string{"*", "*", "_", "_"},
		},
		{
			name:       "list markers",
			in:         "- one\n+ two",
			words:      []string{"one", "two"},
			unlintable: []string{"-", "+"},
		},
		{
			name:       "set rule",
			in:         "#set page(width: 10cm)\nBody",
			words:      []string{"Body"},
			unlintable: []string{"#set page(width: 10cm)"},
		},
		{
			name:       "escape",
			in:         `a \# b`,
			words:      []string{"a", "b"},
			unlintable: []string{`\#`},
		},
		{
			name:       "nested content brackets",
			in:         "#box[a [b] c]",
			words:      []string{"a", "b", "c"},
			unlintable: []string{"#box[", "]"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, src := lex(t, Typst{}, tc.in)
			if got := words(toks, src); !equalStrings(got, tc.words) {
				t.Errorf("words = %q, want %q\n%s", got, tc.words, dump(toks, src))
			}
			if got := unlintable(toks, src); !equalStrings(got, tc.unlintable) {
				t.Errorf("unlintable = %q, want %q\n%s", got, tc.unlintable, dump(toks, src))
			}
		})
	}
}

func TestForPath(t *testing.T) {
	cases := map[string]Parser{
		"a/README.md": Markdown{},
		"x.TYP":       Typst{},
		"notes.txt":   PlainEnglish{},
		"noext":       PlainEnglish{},
	}
	for path, want := range cases {
		if got := ForPath(path); got != want {
			t.Errorf("ForPath(%q) = %T, want %T", path, got, want)
		}
	}
	if p, ok := ByName("MD"); !ok || p != (Markdown{}) {
		t.Errorf("ByName(MD) = %T, %v", p, ok)
	}
	if _, ok := ByName("docx"); ok {
		t.Errorf("unknown parser name must fail")
	}
}
