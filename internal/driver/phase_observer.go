package driver

import (
	"time"

	"quill/internal/observ"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a run phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during LintPaths and LintText.
type PhaseObserver func(PhaseEvent)

// phaseTimer wraps observ.Timer and forwards boundaries to an observer.
type phaseTimer struct {
	*observ.Timer
	observer PhaseObserver
	names    []string
	started  []time.Time
}

func newPhaseTimer(observer PhaseObserver) *phaseTimer {
	return &phaseTimer{Timer: observ.NewTimer(), observer: observer}
}

func (t *phaseTimer) Begin(name string) int {
	idx := t.Timer.Begin(name)
	t.names = append(t.names, name)
	t.started = append(t.started, time.Now())
	if t.observer != nil {
		t.observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
	return idx
}

func (t *phaseTimer) End(idx int, note string) {
	t.Timer.End(idx, note)
	if t.observer == nil || idx < 0 || idx >= len(t.names) {
		return
	}
	t.observer(PhaseEvent{Name: t.names[idx], Status: PhaseEnd, Elapsed: time.Since(t.started[idx])})
}
