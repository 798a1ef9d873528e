package linting

import (
	"slices"

	"quill/internal/source"
)

// Lint is a single finding with candidate corrections.
type Lint struct {
	Span        source.Span
	Kind        LintKind
	Suggestions []Suggestion
	Message     string
	Priority    Priority
	Rule        string
}

// Preferred returns the first suggestion, if any.
func (l Lint) Preferred() (Suggestion, bool) {
	if len(l.Suggestions) == 0 {
		return Suggestion{}, false
	}
	return l.Suggestions[0], true
}

// SortLints orders lints by priority, then span start, span end and rule name.
func SortLints(lints []Lint) {
	slices.SortStableFunc(lints, func(a, b Lint) int {
		switch {
		case a.Priority != b.Priority:
			return int(a.Priority) - int(b.Priority)
		case a.Span.Start != b.Span.Start:
			return cmpUint32(a.Span.Start, b.Span.Start)
		case a.Span.End != b.Span.End:
			return cmpUint32(a.Span.End, b.Span.End)
		case a.Rule < b.Rule:
			return -1
		case a.Rule > b.Rule:
			return 1
		}
		return 0
	})
}

// SortLintsBySpan orders lints by position, for rendering in reading order.
func SortLintsBySpan(lints []Lint) {
	slices.SortStableFunc(lints, func(a, b Lint) int {
		if a.Span.Start != b.Span.Start {
			return cmpUint32(a.Span.Start, b.Span.Start)
		}
		if a.Span.End != b.Span.End {
			return cmpUint32(a.Span.End, b.Span.End)
		}
		return int(a.Priority) - int(b.Priority)
	})
}

func cmpUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
