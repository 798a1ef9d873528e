package patterns

import (
	"quill/internal/parsers"
	"quill/internal/token"
)

// Sequence matches its parts one after another.
// An empty sequence matches zero tokens.
type Sequence struct {
	parts []Pattern
}

// NewSequence starts a sequence with the given parts.
func NewSequence(parts ...Pattern) *Sequence {
	return &Sequence{parts: parts}
}

func (s *Sequence) Matches(toks []token.Token, src []rune) (int, bool) {
	at := 0
	for _, p := range s.parts {
		n, ok := p.Matches(toks[at:], src)
		if !ok {
			return 0, false
		}
		at += n
	}
	return at, true
}

// Len returns the number of parts.
func (s *Sequence) Len() int { return len(s.parts) }

func (s *Sequence) Then(p Pattern) *Sequence {
	s.parts = append(s.parts, p)
	return s
}

func (s *Sequence) ThenWhitespace() *Sequence { return s.Then(Whitespace()) }
func (s *Sequence) ThenHyphen() *Sequence     { return s.Then(Hyphen()) }
func (s *Sequence) ThenPeriod() *Sequence     { return s.Then(Period()) }
func (s *Sequence) ThenVerb() *Sequence       { return s.Then(Verb()) }
func (s *Sequence) ThenNoun() *Sequence       { return s.Then(Noun()) }
func (s *Sequence) ThenAnyWord() *Sequence    { return s.Then(AnyWord()) }

func (s *Sequence) ThenAnyCapitalizationOf(word string) *Sequence {
	return s.Then(AnyCapitalizationOf(word))
}

func (s *Sequence) ThenExactWord(word string) *Sequence {
	return s.Then(ExactWord(word))
}

func (s *Sequence) ThenWordSet(words ...string) *Sequence {
	return s.Then(NewWordSet(words...))
}

// Phrase builds a sequence matching text under any capitalization. Runs of
// whitespace in text match any run of whitespace.
func Phrase(text string) *Sequence {
	src := []rune(text)
	seq := NewSequence()
	for _, t := range (parsers.PlainEnglish{}).Parse(src) {
		switch t.Kind {
		case token.Word:
			seq.ThenAnyCapitalizationOf(t.Text(src))
		case token.Number:
			seq.Then(exactText(t.Text(src)))
		case token.Space, token.Newline:
			seq.ThenWhitespace()
		case token.Punctuation:
			seq.Then(PunctuationOf(t.Punct))
		default:
			seq.Then(single(func(token.Token, []rune) bool { return false }))
		}
	}
	return seq
}

// Either tries its alternatives in order; the first that matches wins.
type Either struct {
	alts []Pattern
}

func NewEither(alts ...Pattern) *Either {
	return &Either{alts: alts}
}

func (e *Either) Or(p Pattern) *Either {
	e.alts = append(e.alts, p)
	return e
}

func (e *Either) Matches(toks []token.Token, src []rune) (int, bool) {
	for _, p := range e.alts {
		if n, ok := p.Matches(toks, src); ok {
			return n, true
		}
	}
	return 0, false
}
