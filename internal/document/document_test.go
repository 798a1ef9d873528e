package document

import (
	"strings"
	"testing"

	"quill/internal/dict"
	"quill/internal/morph"
	"quill/internal/parsers"
	"quill/internal/source"
	"quill/internal/token"
)

func TestResolvesWords(t *testing.T) {
	doc := New("The cats GO home.", parsers.PlainEnglish{}, dict.Curated())
	for _, tok := range doc.Tokens() {
		if tok.IsWord() && tok.Word == nil {
			t.Fatalf("word %q left unresolved", doc.TokenText(tok))
		}
	}
	toks := doc.Tokens()
	if !toks[0].Meta().IsArticle() {
		t.Errorf("'The' should resolve to an article")
	}
	if !toks[4].Meta().IsVerb() {
		t.Errorf("'GO' should resolve case-insensitively to a verb")
	}
	if !toks[2].Meta().IsEmpty() {
		t.Errorf("unknown word should have empty metadata, got %v", toks[2].Meta())
	}
}

func TestAdapterMetadataWins(t *testing.T) {
	d := dict.NewMap(map[string]morph.WordMetadata{
		"group’s": {Noun: &morph.NounData{IsPossessive: morph.No, IsProper: morph.Yes}},
	})
	doc := New("group’s", parsers.Typst{}, d)
	meta := doc.Tokens()[0].Meta()
	if !meta.IsPossessiveNoun() {
		t.Fatalf("adapter possessive flag must win: %v", meta)
	}
	if !meta.IsProperNoun() {
		t.Fatalf("dictionary fields must fill the rest: %v", meta)
	}
}

func TestReconstructsSource(t *testing.T) {
	inputs := []string{
		"Hello, world!\n\nSecond paragraph here.",
		"# Title\n\nSome `code` and [a link](http://x.y).",
		"",
	}
	for _, in := range inputs {
		doc := New(in, parsers.Markdown{}, dict.Curated())
		var b strings.Builder
		for _, tok := range doc.Tokens() {
			b.WriteString(doc.TokenText(tok))
		}
		if b.String() != in {
			t.Errorf("concatenated tokens %q != source %q", b.String(), in)
		}
	}
}

func TestMalformedParserDegrades(t *testing.T) {
	bad := parsers.Func(func(src []rune) []token.Token {
		return []token.Token{token.NewWord(source.Span{Start: 0, End: 2}, nil)}
	})
	doc := New("hello", bad, dict.Curated())
	toks := doc.Tokens()
	if len(toks) != 1 || !toks[0].IsUnlintable() || toks[0].Span != (source.Span{Start: 0, End: 5}) {
		t.Fatalf("expected single Unlintable token, got %v", toks)
	}

	doc = New("hello", nil, nil)
	if len(doc.Tokens()) != 1 || !doc.Tokens()[0].IsUnlintable() {
		t.Fatalf("nil parser must degrade to Unlintable")
	}
}

func TestWordLikesAndSpans(t *testing.T) {
	doc := New("I have 2 cats.", parsers.PlainEnglish{}, dict.Curated())
	var got []string
	for _, tok := range doc.WordLikes() {
		got = append(got, doc.TokenText(tok))
	}
	if strings.Join(got, "|") != "I|have|2|cats" {
		t.Fatalf("WordLikes = %q", got)
	}
	sp, ok := doc.SpanOf(doc.Tokens()[2:5])
	if !ok || doc.Text(sp) != "have 2" {
		t.Fatalf("SpanOf = %v %q", sp, doc.Text(sp))
	}
	if doc.Len() != 14 || doc.String() != "I have 2 cats." {
		t.Fatalf("Len/String mismatch")
	}
}
