package token

import (
	"fmt"

	"quill/internal/morph"
	"quill/internal/source"
)

// Numeric is the payload of a Number token.
type Numeric struct {
	Value float64
	// Suffix is the ordinal suffix ("st", "nd", "rd", "th"), empty when absent.
	Suffix string
}

// Token represents a single prose token with its location and payload.
// Only the payload matching Kind is meaningful.
type Token struct {
	Span  source.Span
	Kind  Kind
	Word  *morph.WordMetadata // Kind == Word; nil until resolved
	Num   Numeric             // Kind == Number
	Punct Punct               // Kind == Punctuation
	Count int                 // Kind == Space or Newline
}

func NewWord(sp source.Span, meta *morph.WordMetadata) Token {
	return Token{Span: sp, Kind: Word, Word: meta}
}

func NewNumber(sp source.Span, n Numeric) Token {
	return Token{Span: sp, Kind: Number, Num: n}
}

func NewPunct(sp source.Span, p Punct) Token {
	return Token{Span: sp, Kind: Punctuation, Punct: p}
}

func NewSpace(sp source.Span, count int) Token {
	return Token{Span: sp, Kind: Space, Count: count}
}

func NewNewline(sp source.Span, count int) Token {
	return Token{Span: sp, Kind: Newline, Count: count}
}

func NewParagraphBreak(sp source.Span) Token {
	return Token{Span: sp, Kind: ParagraphBreak}
}

func NewUnlintable(sp source.Span) Token {
	return Token{Span: sp, Kind: Unlintable}
}

// IsWord reports whether the token is a word.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsWordLike reports whether the token is a word or a number.
func (t Token) IsWordLike() bool { return t.Kind == Word || t.Kind == Number }

// IsWhitespace reports whether the token is a space or in-paragraph newline run.
// Paragraph breaks are not whitespace for matching purposes.
func (t Token) IsWhitespace() bool { return t.Kind == Space || t.Kind == Newline }

func (t Token) IsSpace() bool          { return t.Kind == Space }
func (t Token) IsNewline() bool        { return t.Kind == Newline }
func (t Token) IsParagraphBreak() bool { return t.Kind == ParagraphBreak }
func (t Token) IsUnlintable() bool     { return t.Kind == Unlintable }
func (t Token) IsNumber() bool         { return t.Kind == Number }

// IsPunct reports whether the token is the given punctuation mark.
func (t Token) IsPunct(p Punct) bool { return t.Kind == Punctuation && t.Punct == p }

func (t Token) IsPeriod() bool { return t.IsPunct(Period) }
func (t Token) IsHyphen() bool { return t.IsPunct(Hyphen) }

// Meta returns the word metadata, or the zero record for unresolved words and
// non-word tokens.
func (t Token) Meta() morph.WordMetadata {
	if t.Kind != Word || t.Word == nil {
		return morph.WordMetadata{}
	}
	return *t.Word
}

// Runes returns the token's characters from src.
func (t Token) Runes(src []rune) []rune { return t.Span.Content(src) }

// Text returns the token's characters from src as a string.
func (t Token) Text(src []rune) string { return t.Span.ContentString(src) }

func (t Token) String() string {
	switch t.Kind {
	case Word:
		if t.Word == nil {
			return fmt.Sprintf("Word(unresolved)@%s", t.Span)
		}
		return fmt.Sprintf("Word(%s)@%s", t.Word, t.Span)
	case Number:
		return fmt.Sprintf("Number(%g%s)@%s", t.Num.Value, t.Num.Suffix, t.Span)
	case Punctuation:
		return fmt.Sprintf("Punctuation(%s)@%s", t.Punct, t.Span)
	case Space, Newline:
		return fmt.Sprintf("%s(%d)@%s", t.Kind, t.Count, t.Span)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}
