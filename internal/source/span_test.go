package source

import (
	"testing"
)

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span left by 5",
			span:     Span{Start: 10, End: 20},
			shift:    5,
			expected: Span{Start: 5, End: 15},
		},
		{
			name:     "shift span left by 0",
			span:     Span{Start: 10, End: 20},
			shift:    0,
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "shift equals start - boundary case",
			span:     Span{Start: 10, End: 20},
			shift:    10,
			expected: Span{Start: 0, End: 10},
		},
		{
			name:     "shift larger than start - returns original",
			span:     Span{Start: 10, End: 20},
			shift:    15,
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{Start: 10, End: 10},
			shift:    3,
			expected: Span{Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.ShiftLeft(tt.shift)
			if result != tt.expected {
				t.Errorf("ShiftLeft() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpan_ShiftRight(t *testing.T) {
	span := Span{Start: 3, End: 7}
	if got := span.ShiftRight(10); got != (Span{Start: 13, End: 17}) {
		t.Errorf("ShiftRight() = %+v", got)
	}
	if got := span.ShiftRight(0); got != span {
		t.Errorf("ShiftRight(0) changed span: %+v", got)
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{Start: 0, End: 3}, Span{Start: 5, End: 8}, Span{Start: 0, End: 8}},
		{"nested", Span{Start: 0, End: 10}, Span{Start: 2, End: 4}, Span{Start: 0, End: 10}},
		{"reversed order", Span{Start: 5, End: 8}, Span{Start: 0, End: 3}, Span{Start: 0, End: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"touching", Span{Start: 0, End: 3}, Span{Start: 3, End: 5}, false},
		{"overlapping", Span{Start: 0, End: 4}, Span{Start: 3, End: 5}, true},
		{"two insertions", Span{Start: 2, End: 2}, Span{Start: 2, End: 2}, false},
		{"insertion inside", Span{Start: 2, End: 2}, Span{Start: 1, End: 4}, true},
		{"insertion at end", Span{Start: 4, End: 4}, Span{Start: 1, End: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() not symmetric: %v", got)
			}
		})
	}
}

func TestSpan_Content(t *testing.T) {
	src := []rune("héllo wörld")
	if got := (Span{Start: 6, End: 11}).ContentString(src); got != "wörld" {
		t.Errorf("ContentString() = %q", got)
	}
	// выход за границы буфера обрезается
	if got := (Span{Start: 6, End: 40}).ContentString(src); got != "wörld" {
		t.Errorf("clamped ContentString() = %q", got)
	}
	if got := (Span{Start: 3, End: 3}).Content(src); len(got) != 0 {
		t.Errorf("zero-width Content() = %q", string(got))
	}
}

func TestNewSpanPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inverted span")
		}
	}()
	_ = NewSpan(5, 2)
}
