package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open range [Start, End) of character offsets into one
// immutable rune buffer. Zero-width spans mark insertion points.
type Span struct {
	Start uint32 // в символах включительно
	End   uint32 // в символах не включительно
}

// NewSpan builds a span from int offsets. Negative or overflowing offsets
// panic, as do inverted ranges.
func NewSpan(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	if s > e {
		panic(fmt.Errorf("inverted span %d..%d", s, e))
	}
	return Span{Start: s, End: e}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Overlaps reports whether the two spans share at least one character.
// A zero-width span overlaps a span that strictly contains its position.
func (s Span) Overlaps(other Span) bool {
	if s.Empty() && other.Empty() {
		return false
	}
	if s.Empty() {
		return other.Start <= s.Start && s.Start < other.End
	}
	if other.Empty() {
		return s.Start <= other.Start && other.Start < s.End
	}
	return s.Start < other.End && other.Start < s.End
}

// Contains reports whether off falls inside [Start, End).
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}

// ShiftLeft moves the span n characters towards the buffer start.
// If n exceeds Start the span is returned unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Start {
		return s
	}
	return Span{
		Start: s.Start - n,
		End:   s.End - n,
	}
}

// ShiftRight moves the span n characters towards the buffer end.
func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}

// Content returns the slice of src covered by the span, clamped to src.
func (s Span) Content(src []rune) []rune {
	n, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	start, end := min(s.Start, n), min(s.End, n)
	return src[start:end]
}

// ContentString is Content converted to a string.
func (s Span) ContentString(src []rune) string {
	return string(s.Content(src))
}
