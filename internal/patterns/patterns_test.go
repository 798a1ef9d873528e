package patterns

import (
	"testing"

	"quill/internal/dict"
	"quill/internal/document"
	"quill/internal/parsers"
	"quill/internal/token"
)

func doc(s string) *document.Document {
	return document.New(s, parsers.PlainEnglish{}, dict.Curated())
}

// match runs p at the start of s.
func match(p Pattern, s string) (int, bool) {
	d := doc(s)
	return p.Matches(d.Tokens(), d.Source())
}

func TestPrimitives(t *testing.T) {
	cases := []struct {
		name string
		p    Pattern
		in   string
		n    int
		ok   bool
	}{
		{"wordset hit", NewWordSet("lets", "let"), "LETS go", 1, true},
		{"wordset miss", NewWordSet("lets"), "let's go", 0, false},
		{"any capitalization", AnyCapitalizationOf("course"), "CoUrSe", 1, true},
		{"any capitalization miss", AnyCapitalizationOf("course"), "courses", 0, false},
		{"exact word", ExactWord("Apple"), "Apple pie", 1, true},
		{"exact word case", ExactWord("Apple"), "apple pie", 0, false},
		{"any word", AnyWord(), "word", 1, true},
		{"any word number", AnyWord(), "12", 0, false},
		{"whitespace run", Whitespace(), " \n  x", 2, true},
		{"whitespace paragraph", Whitespace(), "\n\nx", 0, false},
		{"hyphen", Hyphen(), "-x", 1, true},
		{"period", Period(), ".", 1, true},
		{"comma", PunctuationOf(token.Comma), ",", 1, true},
		{"verb", Verb(), "go", 1, true},
		{"verb miss", Verb(), "me", 0, false},
		{"noun", Noun(), "house", 1, true},
		{"pronoun", Pronoun(), "they", 1, true},
		{"adjective", Adjective(), "quick", 1, true},
		{"adverb", Adverb(), "quickly", 1, true},
		{"empty input", AnyWord(), "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := match(tc.p, tc.in)
			if n != tc.n || ok != tc.ok {
				t.Fatalf("got (%d, %v), want (%d, %v)", n, ok, tc.n, tc.ok)
			}
		})
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence().ThenWordSet("lets", "let").ThenWhitespace().ThenVerb()
	if n, ok := match(seq, "Lets go now"); !ok || n != 3 {
		t.Fatalf("got (%d, %v)", n, ok)
	}
	if _, ok := match(seq, "Let me go"); ok {
		t.Fatalf("pronoun must not satisfy the verb slot")
	}
	if _, ok := match(seq, "lets\n\ngo"); ok {
		t.Fatalf("sequence must not cross a paragraph break")
	}
	if n, ok := match(NewSequence(), "anything"); !ok || n != 0 {
		t.Fatalf("empty sequence matches zero tokens")
	}
	hy := NewSequence().ThenAnyWord().ThenHyphen().ThenAnyCapitalizationOf("paced").ThenPeriod()
	if n, ok := match(hy, "fast-paced."); !ok || n != 4 {
		t.Fatalf("hyphen sequence: (%d, %v)", n, ok)
	}
	if NewSequence().ThenExactWord("a").ThenNoun().Len() != 2 {
		t.Fatalf("Len mismatch")
	}
}

func TestPhrase(t *testing.T) {
	p := Phrase("off course")
	if n, ok := match(p, "Off   Course!"); !ok || n != 3 {
		t.Fatalf("got (%d, %v)", n, ok)
	}
	if _, ok := match(p, "off courses"); ok {
		t.Fatalf("phrase must match whole words")
	}
	if n, ok := match(Phrase("fast-paste"), "Fast-Paste"); !ok || n != 3 {
		t.Fatalf("hyphenated phrase: (%d, %v)", n, ok)
	}
	if n, ok := match(Phrase("top 10 list"), "top 10 list"); !ok || n != 5 {
		t.Fatalf("phrase with number: (%d, %v)", n, ok)
	}
}

func TestEitherFirstMatchWins(t *testing.T) {
	long := Phrase("of course")
	short := AnyCapitalizationOf("of")
	d := doc("of course")

	n, ok := NewEither(short, long).Matches(d.Tokens(), d.Source())
	if !ok || n != 1 {
		t.Fatalf("first alternative must win: (%d, %v)", n, ok)
	}
	n, ok = NewEither(long).Or(short).Matches(d.Tokens(), d.Source())
	if !ok || n != 3 {
		t.Fatalf("first alternative must win: (%d, %v)", n, ok)
	}
	if _, ok := NewEither().Matches(d.Tokens(), d.Source()); ok {
		t.Fatalf("empty Either never matches")
	}
}

func TestIsNotTitleCase(t *testing.T) {
	p := NewIsNotTitleCase(Phrase("south america"), dict.Curated())
	if n, ok := match(p, "south america"); !ok || n != 3 {
		t.Fatalf("lowercase must match: (%d, %v)", n, ok)
	}
	if n, ok := match(p, "SOUTH AMERICA"); !ok || n != 3 {
		t.Fatalf("uppercase must match: (%d, %v)", n, ok)
	}
	if _, ok := match(p, "South America"); ok {
		t.Fatalf("title case must not match")
	}
	of := NewIsNotTitleCase(Phrase("isle of man"), dict.Curated())
	if _, ok := match(of, "Isle of Man"); ok {
		t.Fatalf("lowercase preposition is title case")
	}
	if _, ok := match(of, "Isle Of Man"); !ok {
		t.Fatalf("capitalised preposition is not title case")
	}
}

func TestFuncAndPredicate(t *testing.T) {
	two := Func(func(toks []token.Token, _ []rune) (int, bool) {
		return 2, len(toks) >= 2
	})
	if n, ok := match(two, "a b"); !ok || n != 2 {
		t.Fatalf("Func: (%d, %v)", n, ok)
	}
	num := TokenPredicate(func(t token.Token, _ []rune) bool { return t.IsNumber() })
	if _, ok := match(num, "42"); !ok {
		t.Fatalf("TokenPredicate should match a number")
	}
}
