package parsers

import (
	"unicode"

	"quill/internal/token"
)

// Markdown lexes CommonMark-style documents. Code (fenced and inline), HTML,
// link destinations, front matter and syntax markers are Unlintable; link
// text, headings, list items and emphasis contents are prose.
type Markdown struct{}

func (Markdown) Parse(src []rune) []token.Token {
	s := mdScanner{cur: NewCursor(src)}
	s.run()
	return s.opaque.tokens(src, nil)
}

type mdScanner struct {
	cur    Cursor
	opaque opaqueSet
}

func (s *mdScanner) run() {
	s.frontMatter()
	for !s.cur.EOF() {
		lineEnd := s.lineEnd(s.cur.Off)
		if s.cur.AtLineStart() {
			if s.fence() || s.thematicBreak(lineEnd) {
				continue
			}
			s.blockMarkers(lineEnd)
		}
		s.inline(lineEnd)
		if s.cur.Off <= lineEnd {
			s.cur.Reset(Mark(lineEnd))
			s.cur.Eat('\n')
		}
	}
}

func (s *mdScanner) lineEnd(from uint32) uint32 {
	for i := from; i < s.cur.Limit; i++ {
		if s.cur.Src[i] == '\n' {
			return i
		}
	}
	return s.cur.Limit
}

// frontMatter: YAML блок "---" в самом начале файла
func (s *mdScanner) frontMatter() {
	if !s.cur.HasPrefix("---\n") {
		return
	}
	at := s.lineEnd(0) + 1
	for at < s.cur.Limit {
		end := s.lineEnd(at)
		if string(s.cur.Src[at:end]) == "---" {
			s.opaque.add(0, end)
			s.cur.Reset(Mark(end))
			return
		}
		at = end + 1
	}
}

func (s *mdScanner) skipIndent(limit uint32) {
	s.cur.EatWhile(func(r rune) bool { return (r == ' ' || r == '\t') && s.cur.Off < limit })
}

// fence consumes a fenced code block, including its closing line.
func (s *mdScanner) fence() bool {
	start := s.cur.Mark()
	s.skipIndent(s.lineEnd(s.cur.Off))
	ch := s.cur.Peek()
	if ch != '`' && ch != '~' {
		s.cur.Reset(start)
		return false
	}
	open := s.cur.Off
	n := s.cur.EatWhile(func(r rune) bool { return r == ch })
	if n < 3 {
		s.cur.Reset(start)
		return false
	}
	end := s.cur.Limit
	at := s.lineEnd(s.cur.Off)
	for at < s.cur.Limit {
		at++
		lineEnd := s.lineEnd(at)
		line := s.cur.Src[at:lineEnd]
		i := 0
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		run := 0
		for i+run < len(line) && line[i+run] == ch {
			run++
		}
		if uint32(run) >= n && isBlank(line[i+run:]) {
			end = lineEnd
			break
		}
		at = lineEnd
	}
	s.opaque.add(open, end)
	s.cur.Reset(Mark(end))
	return true
}

// thematicBreak: строка из трёх и более '-', '*', '_' или '=' (setext)
func (s *mdScanner) thematicBreak(lineEnd uint32) bool {
	line := s.cur.Src[s.cur.Off:lineEnd]
	var ch rune
	count := 0
	first := -1
	for i, r := range line {
		switch {
		case r == ' ' || r == '\t':
			continue
		case ch == 0 && (r == '-' || r == '*' || r == '_' || r == '='):
			ch = r
			first = i
			count++
		case r == ch:
			count++
		default:
			return false
		}
	}
	if count < 3 {
		return false
	}
	s.opaque.add(s.cur.Off+uint32(first), lineEnd)
	s.cur.Reset(Mark(lineEnd))
	return true
}

// blockMarkers consumes heading, blockquote, list and task markers at the
// start of a line.
func (s *mdScanner) blockMarkers(lineEnd uint32) {
	for {
		s.skipIndent(lineEnd)
		if s.cur.Peek() != '>' {
			break
		}
		s.opaque.add(s.cur.Off, s.cur.Off+1)
		s.cur.Bump()
	}
	at := s.cur.Off
	switch r := s.cur.Peek(); {
	case r == '#':
		n := s.cur.EatWhile(func(r rune) bool { return r == '#' })
		if n <= 6 && (s.cur.Off == lineEnd || isHSpace(s.cur.Peek())) {
			s.opaque.add(at, s.cur.Off)
			return
		}
		s.cur.Reset(Mark(at))
	case r == '-' || r == '*' || r == '+':
		if isHSpace(s.cur.PeekAt(1)) {
			s.cur.Bump()
			s.opaque.add(at, s.cur.Off)
			s.taskBox(lineEnd)
		}
	case isDigit(r):
		n := s.cur.EatWhile(isDigit)
		if n <= 9 && (s.cur.Peek() == '.' || s.cur.Peek() == ')') && isHSpace(s.cur.PeekAt(1)) {
			s.cur.Bump()
			s.opaque.add(at, s.cur.Off)
			s.taskBox(lineEnd)
			return
		}
		s.cur.Reset(Mark(at))
	}
}

func (s *mdScanner) taskBox(lineEnd uint32) {
	s.skipIndent(lineEnd)
	if s.cur.Peek() == '[' && s.cur.PeekAt(2) == ']' {
		switch s.cur.PeekAt(1) {
		case ' ', 'x', 'X':
			s.opaque.add(s.cur.Off, s.cur.Off+3)
			s.cur.BumpN(3)
		}
	}
}

// inline scans up to limit. HTML comments may run past the line end.
func (s *mdScanner) inline(limit uint32) {
	for s.cur.Off < limit {
		at := s.cur.Off
		switch r := s.cur.Peek(); {
		case r == '\\' && s.cur.Off+1 < limit && isASCIIPunct(s.cur.PeekAt(1)):
			s.cur.BumpN(2)
			s.opaque.add(at, s.cur.Off)
		case r == '`':
			s.inlineCode(limit)
		case r == '<':
			if s.cur.HasPrefix("<!--") {
				s.htmlComment()
				if s.cur.Off > limit {
					limit = s.lineEnd(s.cur.Off)
				}
				continue
			}
			if !s.htmlTag(limit) {
				s.cur.Bump()
			}
		case r == '!' && s.cur.PeekAt(1) == '[':
			s.cur.Bump()
			if !s.link(limit, at) {
				s.cur.Reset(Mark(at + 1))
			}
		case r == '[':
			if !s.link(limit, at) {
				s.cur.Bump()
			}
		case r == '*' || r == '_' || r == '~':
			if r == '_' && isWordRune(s.prev()) && isWordRune(s.cur.PeekAt(1)) {
				// snake_case внутри слова не разметка
				s.cur.Bump()
				continue
			}
			s.cur.EatWhile(func(c rune) bool { return c == r && s.cur.Off < limit })
			s.opaque.add(at, s.cur.Off)
		case (r == 'h' || r == 'H') && s.atBareURL():
			s.cur.EatWhile(func(c rune) bool { return !unicode.IsSpace(c) && s.cur.Off < limit })
			for s.cur.Off > at && isURLTrailer(s.cur.Src[s.cur.Off-1]) {
				s.cur.Off--
			}
			s.opaque.add(at, s.cur.Off)
		default:
			s.cur.Bump()
		}
	}
}

func (s *mdScanner) prev() rune {
	if s.cur.Off == 0 {
		return 0
	}
	return s.cur.Src[s.cur.Off-1]
}

func (s *mdScanner) atBareURL() bool {
	return (s.cur.HasPrefixFold("http://") || s.cur.HasPrefixFold("https://")) && !isWordRune(s.prev())
}

func (s *mdScanner) inlineCode(limit uint32) {
	at := s.cur.Off
	n := s.cur.EatWhile(func(r rune) bool { return r == '`' })
	for i := s.cur.Off; i < limit; {
		if s.cur.Src[i] != '`' {
			i++
			continue
		}
		j := i
		for j < limit && s.cur.Src[j] == '`' {
			j++
		}
		if j-i == n {
			s.opaque.add(at, j)
			s.cur.Reset(Mark(j))
			return
		}
		i = j
	}
	// незакрытый код: сами кавычки непрозрачны
	s.opaque.add(at, s.cur.Off)
}

func (s *mdScanner) htmlComment() {
	at := s.cur.Off
	for i := at + 4; i+2 < s.cur.Limit; i++ {
		if s.cur.Src[i] == '-' && s.cur.Src[i+1] == '-' && s.cur.Src[i+2] == '>' {
			s.opaque.add(at, i+3)
			s.cur.Reset(Mark(i + 3))
			return
		}
	}
	s.opaque.add(at, s.cur.Limit)
	s.cur.Reset(Mark(s.cur.Limit))
}

// htmlTag consumes <tag ...>, </tag> and <scheme:autolink>.
func (s *mdScanner) htmlTag(limit uint32) bool {
	next := s.cur.PeekAt(1)
	if !unicode.IsLetter(next) && next != '/' && next != '!' && next != '?' {
		return false
	}
	for i := s.cur.Off + 1; i < limit; i++ {
		if s.cur.Src[i] == '>' {
			s.opaque.add(s.cur.Off, i+1)
			s.cur.Reset(Mark(i + 1))
			return true
		}
	}
	return false
}

// link handles [text](dest), [text][ref] and [text]: the text stays prose.
// at is where the opaque opener starts ('!' for images).
func (s *mdScanner) link(limit, at uint32) bool {
	open := s.cur.Off
	closeAt, ok := s.matching(open, limit, '[', ']')
	if !ok {
		return false
	}
	tail := closeAt + 1
	switch {
	case tail < limit && s.cur.Src[tail] == '(':
		end, ok := s.matching(tail, limit, '(', ')')
		if !ok {
			return false
		}
		tail = end + 1
	case tail < limit && s.cur.Src[tail] == '[':
		end, ok := s.matching(tail, limit, '[', ']')
		if !ok {
			return false
		}
		tail = end + 1
	case tail < limit && s.cur.Src[tail] == ':' && s.cur.AtLineStart():
		// определение ссылки: [ref]: url
		s.opaque.add(at, limit)
		s.cur.Reset(Mark(limit))
		return true
	default:
		return false
	}
	s.opaque.add(at, open+1)
	s.cur.Reset(Mark(open + 1))
	s.inline(closeAt)
	s.opaque.add(closeAt, tail)
	s.cur.Reset(Mark(tail))
	return true
}

func (s *mdScanner) matching(from, limit uint32, open, close rune) (uint32, bool) {
	depth := 0
	for i := from; i < limit; i++ {
		switch s.cur.Src[i] {
		case '\\':
			i++
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isBlank(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }

func isASCIIPunct(r rune) bool {
	return r < 0x80 && unicode.IsPunct(r) || r == '`' || r == '|' || r == '~' || r == '<' || r == '>' || r == '+' || r == '=' || r == '^' || r == '$'
}
