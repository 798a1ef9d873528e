package parsers

import (
	"fmt"
	"unicode"

	"quill/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет позицию в буфере рун
type Cursor struct {
	Src []rune
	Off uint32
	// Limit is the exclusive upper bound for Off; defaults to len(Src).
	Limit uint32
}

// NewCursor creates a cursor over the whole buffer.
func NewCursor(src []rune) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{Src: src, Limit: limit}
}

// EOF проверяет, достигнут ли конец буфера
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущую руну, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// PeekAt читает руну на n позиций вперёд, 0 за пределами буфера
func (c *Cursor) PeekAt(n uint32) rune {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.Src[c.Off+n]
}

// Peek2 читает текущую и следующую руну
func (c *Cursor) Peek2() (r0, r1 rune, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.Src[c.Off], c.Src[c.Off+1], true
}

// Bump перемещает курсор на одну руну вперед и возвращает её
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.Src[c.Off]
	c.Off++
	return r
}

// BumpN advances up to n runes.
func (c *Cursor) BumpN(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Src[c.Off] == r {
		c.Off++
		return true
	}
	return false
}

// EatWhile consumes runes while pred holds and returns how many were eaten.
func (c *Cursor) EatWhile(pred func(rune) bool) uint32 {
	start := c.Off
	for !c.EOF() && pred(c.Src[c.Off]) {
		c.Off++
	}
	return c.Off - start
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return c.hasPrefix(s, false)
}

// HasPrefixFold is HasPrefix ignoring letter case.
func (c *Cursor) HasPrefixFold(s string) bool {
	return c.hasPrefix(s, true)
}

func (c *Cursor) hasPrefix(s string, fold bool) bool {
	i := c.Off
	for _, want := range s {
		if i >= c.Limit {
			return false
		}
		got := c.Src[i]
		if fold {
			got, want = unicode.ToLower(got), unicode.ToLower(want)
		}
		if got != want {
			return false
		}
		i++
	}
	return true
}

// EatPrefix consumes s if the remaining input starts with it.
func (c *Cursor) EatPrefix(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	c.BumpN(uint32(len([]rune(s))))
	return true
}

// AtLineStart reports whether only horizontal whitespace precedes Off on its line.
func (c *Cursor) AtLineStart() bool {
	for i := int(c.Off) - 1; i >= 0; i-- {
		switch c.Src[i] {
		case '\n':
			return true
		case ' ', '\t':
			continue
		default:
			return false
		}
	}
	return true
}
