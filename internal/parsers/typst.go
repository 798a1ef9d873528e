package parsers

import (
	"strings"
	"unicode"

	"quill/internal/morph"
	"quill/internal/token"
)

// Typst lexes Typst markup. Math, code expressions, labels, references, raw
// blocks, comments, escapes and markup markers are Unlintable; string
// literals and content blocks inside code are lexed as prose. Words ending
// in a possessive "'s" are tagged as possessive nouns.
type Typst struct{}

func (Typst) Parse(src []rune) []token.Token {
	s := typstScanner{cur: NewCursor(src)}
	s.markup(0)
	return s.opaque.tokens(src, tagPossessives)
}

// typstKeywords начинают оператор, который тянется до конца строки.
var typstKeywords = map[string]bool{
	"let": true, "set": true, "show": true, "import": true, "include": true,
	"if": true, "for": true, "while": true, "return": true, "context": true,
	"break": true, "continue": true,
}

type typstScanner struct {
	cur    Cursor
	opaque opaqueSet
}

// markup scans markup until EOF, or until the ']' closing a content block
// when depth > 0. The closing bracket is left unconsumed.
func (s *typstScanner) markup(depth int) {
	for !s.cur.EOF() {
		at := s.cur.Off
		r := s.cur.Peek()
		switch {
		case r == ']' && depth > 0:
			return
		case r == '[' && depth > 0:
			// вложенные скобки в контенте остаются текстом
			s.cur.Bump()
			s.markup(depth + 1)
			s.cur.Eat(']')
		case r == '$':
			s.delimited('$')
		case r == '`':
			s.raw()
		case r == '/' && (s.cur.PeekAt(1) == '/' || s.cur.PeekAt(1) == '*'):
			s.comment()
		case r == '\\':
			s.cur.BumpN(2)
			s.opaque.add(at, s.cur.Off)
		case r == '<' && s.labelAhead():
			s.cur.Bump()
			s.cur.EatWhile(isLabelRune)
			s.cur.Eat('>')
			s.opaque.add(at, s.cur.Off)
		case r == '@' && isLabelRune(s.cur.PeekAt(1)):
			s.cur.Bump()
			s.cur.EatWhile(isLabelRune)
			s.trimLabelTail(at)
			s.opaque.add(at, s.cur.Off)
		case r == '#':
			s.cur.Bump()
			s.opaque.add(at, s.cur.Off)
			s.hashExpr()
		case (r == '*' || r == '_' || r == '~') && !s.insideWord():
			s.cur.Bump()
			s.opaque.add(at, s.cur.Off)
		case s.cur.AtLineStart() && s.marker():
			s.opaque.add(at, s.cur.Off)
		default:
			s.cur.Bump()
		}
	}
}

// marker consumes a heading ("= "), list ("- ", "+ ") or term ("/ ") marker.
func (s *typstScanner) marker() bool {
	at := s.cur.Mark()
	switch s.cur.Peek() {
	case '=':
		s.cur.EatWhile(func(r rune) bool { return r == '=' })
	case '-', '+', '/':
		s.cur.Bump()
	default:
		return false
	}
	if !isHSpace(s.cur.Peek()) {
		s.cur.Reset(at)
		return false
	}
	return true
}

func (s *typstScanner) insideWord() bool {
	prev := rune(0)
	if s.cur.Off > 0 {
		prev = s.cur.Src[s.cur.Off-1]
	}
	return s.cur.Peek() == '_' && isWordRune(prev) && isWordRune(s.cur.PeekAt(1))
}

func (s *typstScanner) labelAhead() bool {
	for i := s.cur.Off + 1; i < s.cur.Limit; i++ {
		r := s.cur.Src[i]
		if r == '>' {
			return i > s.cur.Off+1
		}
		if !isLabelRune(r) {
			return false
		}
	}
	return false
}

// trimLabelTail returns trailing '.' and ':' of a reference to the prose.
func (s *typstScanner) trimLabelTail(at uint32) {
	for s.cur.Off > at+1 {
		switch s.cur.Src[s.cur.Off-1] {
		case '.', ':':
			s.cur.Off--
			continue
		}
		return
	}
}

func isLabelRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' || r == ':'
}

// delimited consumes an escaped-aware region such as $math$.
func (s *typstScanner) delimited(delim rune) {
	at := s.cur.Off
	s.cur.Bump()
	for !s.cur.EOF() {
		r := s.cur.Bump()
		if r == '\\' {
			s.cur.Bump()
			continue
		}
		if r == delim {
			break
		}
	}
	s.opaque.add(at, s.cur.Off)
}

// raw consumes `code` or ```lang blocks```.
func (s *typstScanner) raw() {
	at := s.cur.Off
	n := s.cur.EatWhile(func(r rune) bool { return r == '`' })
	if n == 2 {
		// пустой raw ``
		s.opaque.add(at, s.cur.Off)
		return
	}
	fence := strings.Repeat("`", int(n))
	for !s.cur.EOF() && !s.cur.EatPrefix(fence) {
		s.cur.Bump()
	}
	s.opaque.add(at, s.cur.Off)
}

func (s *typstScanner) comment() {
	at := s.cur.Off
	if s.cur.PeekAt(1) == '/' {
		s.cur.EatWhile(func(r rune) bool { return r != '\n' })
	} else {
		s.cur.BumpN(2)
		depth := 1
		for !s.cur.EOF() && depth > 0 {
			switch {
			case s.cur.EatPrefix("/*"):
				depth++
			case s.cur.EatPrefix("*/"):
				depth--
			default:
				s.cur.Bump()
			}
		}
	}
	s.opaque.add(at, s.cur.Off)
}

// hashExpr consumes the code following '#' in markup.
func (s *typstScanner) hashExpr() {
	switch s.cur.Peek() {
	case '(', '{':
		s.group()
		s.postfix()
		return
	case '[':
		s.contentBlock()
		return
	case '"':
		s.str()
		return
	}
	ident := s.ident()
	if ident == "" {
		return
	}
	if typstKeywords[ident] {
		s.statement()
		return
	}
	s.postfix()
}

func (s *typstScanner) ident() string {
	at := s.cur.Off
	if r := s.cur.Peek(); !unicode.IsLetter(r) && r != '_' {
		return ""
	}
	s.cur.EatWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
	})
	// дефис в конце идентификатора это уже текст
	for s.cur.Off > at && s.cur.Src[s.cur.Off-1] == '-' {
		s.cur.Off--
	}
	s.opaque.add(at, s.cur.Off)
	return string(s.cur.Src[at:s.cur.Off])
}

// postfix consumes field access, calls and trailing content blocks.
func (s *typstScanner) postfix() {
	for {
		switch s.cur.Peek() {
		case '.':
			if !unicode.IsLetter(s.cur.PeekAt(1)) {
				return
			}
			s.bumpCode()
			s.ident()
		case '(':
			s.group()
		case '[':
			s.contentBlock()
		default:
			return
		}
	}
}

// statement consumes code up to the end of the line at bracket depth zero.
func (s *typstScanner) statement() {
	for !s.cur.EOF() {
		switch r := s.cur.Peek(); {
		case r == ';':
			s.bumpCode()
			return
		case r == '\n' || r == ']':
			return
		default:
			s.codeAtom()
		}
	}
}

// group consumes a balanced (...) or {...} code group.
func (s *typstScanner) group() {
	closer := ')'
	if s.bumpCode() == '{' {
		closer = '}'
	}
	for !s.cur.EOF() {
		if s.cur.Peek() == closer {
			s.bumpCode()
			return
		}
		s.codeAtom()
	}
}

// bumpCode consumes one rune of code and marks it opaque.
func (s *typstScanner) bumpCode() rune {
	at := s.cur.Off
	r := s.cur.Bump()
	s.opaque.add(at, s.cur.Off)
	return r
}

// codeAtom consumes one unit of code, recursing into groups, strings and
// content blocks.
func (s *typstScanner) codeAtom() {
	switch r := s.cur.Peek(); {
	case r == '(' || r == '{':
		s.group()
	case r == '[':
		s.contentBlock()
	case r == '"':
		s.str()
	case r == '$':
		s.delimited('$')
	case r == '/' && (s.cur.PeekAt(1) == '/' || s.cur.PeekAt(1) == '*'):
		s.comment()
	default:
		s.bumpCode()
	}
}

// str marks the quotes of a string literal opaque and leaves its contents as prose.
func (s *typstScanner) str() {
	open := s.cur.Off
	s.cur.Bump()
	s.opaque.add(open, open+1)
	for !s.cur.EOF() {
		at := s.cur.Off
		switch s.cur.Peek() {
		case '\\':
			s.cur.BumpN(2)
			s.opaque.add(at, s.cur.Off)
		case '"':
			s.cur.Bump()
			s.opaque.add(at, s.cur.Off)
			return
		default:
			s.cur.Bump()
		}
	}
}

// contentBlock marks the brackets opaque and scans the body as markup.
func (s *typstScanner) contentBlock() {
	open := s.cur.Off
	s.cur.Bump()
	s.opaque.add(open, open+1)
	s.markup(1)
	if at := s.cur.Off; s.cur.Eat(']') {
		s.opaque.add(at, s.cur.Off)
	}
}

// tagPossessives marks words ending in 's as possessive nouns.
func tagPossessives(toks []token.Token, src []rune) {
	for i := range toks {
		if !toks[i].IsWord() {
			continue
		}
		w := toks[i].Runes(src)
		if len(w) > 2 && isApostrophe(w[len(w)-2]) && unicode.ToLower(w[len(w)-1]) == 's' {
			toks[i].Word = &morph.WordMetadata{
				Noun: &morph.NounData{IsPossessive: morph.Yes},
			}
		}
	}
}
