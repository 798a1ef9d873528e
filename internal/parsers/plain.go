package parsers

import (
	"strconv"
	"unicode"

	"quill/internal/source"
	"quill/internal/token"
)

// PlainEnglish lexes prose with no markup.
type PlainEnglish struct{}

func (PlainEnglish) Parse(src []rune) []token.Token {
	lx := plainLexer{cur: NewCursor(src)}
	return lx.run()
}

type plainLexer struct {
	cur  Cursor
	toks []token.Token
}

func (lx *plainLexer) run() []token.Token {
	for !lx.cur.EOF() {
		r := lx.cur.Peek()
		switch {
		case isHSpace(r) || isNewline(r):
			lx.scanWhitespace()
		case (r == 'h' || r == 'H') && lx.atURL():
			lx.scanURL()
		case unicode.IsLetter(r):
			lx.scanWord()
		case isDigit(r):
			lx.scanNumber()
		default:
			if p, ok := token.PunctOf(r); ok {
				m := lx.cur.Mark()
				lx.cur.Bump()
				lx.emit(token.NewPunct(lx.cur.SpanFrom(m), p))
				continue
			}
			lx.scanUnknown()
		}
	}
	return lx.toks
}

func (lx *plainLexer) emit(t token.Token) {
	lx.toks = append(lx.toks, t)
}

// scanWord: буква, затем буквы/цифры/диакритика и апострофы внутри слова
func (lx *plainLexer) scanWord() {
	m := lx.cur.Mark()
	lx.cur.Bump()
	for !lx.cur.EOF() {
		r := lx.cur.Peek()
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			lx.cur.Bump()
		case isApostrophe(r) && unicode.IsLetter(lx.cur.PeekAt(1)):
			lx.cur.Bump()
		default:
			lx.emit(token.NewWord(lx.cur.SpanFrom(m), nil))
			return
		}
	}
	lx.emit(token.NewWord(lx.cur.SpanFrom(m), nil))
}

// scanNumber: 12, 3.5, 21st
func (lx *plainLexer) scanNumber() {
	m := lx.cur.Mark()
	lx.cur.EatWhile(isDigit)
	if r0, r1, ok := lx.cur.Peek2(); ok && r0 == '.' && isDigit(r1) {
		lx.cur.Bump()
		lx.cur.EatWhile(isDigit)
	}
	digits := lx.cur.SpanFrom(m).ContentString(lx.cur.Src)
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		// только ASCII цифры, ошибка невозможна; на всякий случай отдаём Unlintable
		lx.emit(token.NewUnlintable(lx.cur.SpanFrom(m)))
		return
	}
	num := token.Numeric{Value: value}
	if suffix, ok := lx.ordinalSuffix(); ok {
		lx.cur.BumpN(2)
		num.Suffix = suffix
	}
	lx.emit(token.NewNumber(lx.cur.SpanFrom(m), num))
}

func (lx *plainLexer) ordinalSuffix() (string, bool) {
	a, b := unicode.ToLower(lx.cur.PeekAt(0)), unicode.ToLower(lx.cur.PeekAt(1))
	next := lx.cur.PeekAt(2)
	if unicode.IsLetter(next) || unicode.IsDigit(next) {
		return "", false
	}
	switch s := string([]rune{a, b}); s {
	case "st", "nd", "rd", "th":
		return s, true
	}
	return "", false
}

// scanWhitespace splits a whitespace run into leading spaces and the line
// break part. Two or more line breaks form a paragraph break; the break token
// absorbs the indentation that follows it.
func (lx *plainLexer) scanWhitespace() {
	m := lx.cur.Mark()
	if n := lx.cur.EatWhile(isHSpace); n > 0 {
		lx.emit(token.NewSpace(lx.cur.SpanFrom(m), int(n)))
		if !isNewline(lx.cur.Peek()) {
			return
		}
	}
	m = lx.cur.Mark()
	lines := 0
	for !lx.cur.EOF() {
		r := lx.cur.Peek()
		switch {
		case r == '\r':
			lx.cur.Bump()
			if lx.cur.Peek() != '\n' {
				lines++
			}
		case r == '\n':
			lx.cur.Bump()
			lines++
		case isHSpace(r):
			lx.cur.Bump()
		default:
			lx.emitBreak(m, lines)
			return
		}
	}
	lx.emitBreak(m, lines)
}

func (lx *plainLexer) emitBreak(m Mark, lines int) {
	sp := lx.cur.SpanFrom(m)
	if lines >= 2 {
		lx.emit(token.NewParagraphBreak(sp))
		return
	}
	lx.emit(token.NewNewline(sp, lines))
}

func (lx *plainLexer) atURL() bool {
	return lx.cur.HasPrefixFold("http://") || lx.cur.HasPrefixFold("https://")
}

// scanURL consumes up to whitespace, leaving trailing sentence punctuation.
func (lx *plainLexer) scanURL() {
	m := lx.cur.Mark()
	lx.cur.EatWhile(func(r rune) bool { return !isHSpace(r) && !isNewline(r) })
	for lx.cur.Off > uint32(m) && isURLTrailer(lx.cur.Src[lx.cur.Off-1]) {
		lx.cur.Off--
	}
	lx.emit(token.NewUnlintable(lx.cur.SpanFrom(m)))
}

// scanUnknown groups runes no other scanner accepts (emoji, symbols).
func (lx *plainLexer) scanUnknown() {
	m := lx.cur.Mark()
	lx.cur.EatWhile(func(r rune) bool {
		if isHSpace(r) || isNewline(r) || unicode.IsLetter(r) || isDigit(r) {
			return false
		}
		_, punct := token.PunctOf(r)
		return !punct
	})
	if lx.cur.Off == uint32(m) {
		lx.cur.Bump()
	}
	lx.emit(token.NewUnlintable(lx.cur.SpanFrom(m)))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNewline(r rune) bool { return r == '\n' || r == '\r' }

func isHSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}

func isApostrophe(r rune) bool { return r == '\'' || r == '’' }

func isURLTrailer(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', ')', ']', '"', '\'', '’', '”':
		return true
	}
	return false
}

// lexPlain lexes src[sp] with PlainEnglish and shifts the result to absolute offsets.
func lexPlain(src []rune, sp source.Span) []token.Token {
	return offsetCursor{base: sp.Start}.lex(PlainEnglish{}, src[sp.Start:sp.End])
}
