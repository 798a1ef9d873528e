package linting

import "fmt"

// Priority orders lints for presentation; lower values come first.
type Priority uint8

const (
	// PriorityUrgent is for lints that almost certainly change meaning.
	PriorityUrgent Priority = 0
	PriorityHigh   Priority = 15
	// PriorityDefault is used by phrase, capitalization and word choice rules.
	PriorityDefault Priority = 31
	PriorityLow     Priority = 63
	// PriorityHint is for stylistic nudges.
	PriorityHint Priority = 127
)

func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityDefault:
		return "default"
	case PriorityLow:
		return "low"
	case PriorityHint:
		return "hint"
	}
	return fmt.Sprintf("p%d", uint8(p))
}
