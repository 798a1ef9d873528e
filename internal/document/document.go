// Package document binds a rune buffer to its resolved token stream.
package document

import (
	"iter"
	"strings"

	"quill/internal/dict"
	"quill/internal/parsers"
	"quill/internal/source"
	"quill/internal/testkit"
	"quill/internal/token"
)

// Document is an immutable pairing of source runes and tokens. Every Word
// token carries metadata once the document is built.
type Document struct {
	src  []rune
	toks []token.Token
}

// New tokenizes src with p and resolves words against d.
func New(src string, p parsers.Parser, d dict.Dictionary) *Document {
	return NewFromRunes([]rune(src), p, d)
}

// NewFromRunes is New over an existing rune buffer. The buffer must not be
// modified afterwards.
func NewFromRunes(src []rune, p parsers.Parser, d dict.Dictionary) *Document {
	var toks []token.Token
	if p != nil {
		toks = p.Parse(src)
	}
	toks = normalize(toks, src)
	resolve(toks, src, d)
	return &Document{src: src, toks: toks}
}

// normalize degrades output that breaks the partition invariant into a single
// Unlintable token over the whole buffer.
func normalize(toks []token.Token, src []rune) []token.Token {
	if testkit.CheckTokenInvariants(toks, src) == nil {
		return toks
	}
	if len(src) == 0 {
		return nil
	}
	return []token.Token{token.NewUnlintable(source.NewSpan(0, len(src)))}
}

// resolve fills word metadata from the dictionary; fields the parser set win.
func resolve(toks []token.Token, src []rune, d dict.Dictionary) {
	for i := range toks {
		t := &toks[i]
		if t.Kind != token.Word {
			continue
		}
		meta := t.Meta()
		if d != nil {
			meta = meta.Or(d.Metadata(strings.ToLower(t.Text(src))))
		}
		t.Word = &meta
	}
}

// Tokens returns the token stream. Callers must not modify it.
func (d *Document) Tokens() []token.Token { return d.toks }

// Source returns the rune buffer. Callers must not modify it.
func (d *Document) Source() []rune { return d.src }

// Len returns the number of runes.
func (d *Document) Len() int { return len(d.src) }

// WordLikes yields the index and value of every word or number token.
func (d *Document) WordLikes() iter.Seq2[int, token.Token] {
	return token.WordLikes(d.toks)
}

// SpanOf returns the span covering a contiguous token run.
func (d *Document) SpanOf(toks []token.Token) (source.Span, bool) {
	return token.SpanOf(toks)
}

// Text returns the literal text under sp.
func (d *Document) Text(sp source.Span) string { return sp.ContentString(d.src) }

// TokenText returns the literal text of t.
func (d *Document) TokenText(t token.Token) string { return t.Text(d.src) }

// String reconstructs the source text.
func (d *Document) String() string { return string(d.src) }
