// Package observ measures where a lint run spends its time.
package observ

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
)

// Phase is one sequential step of a run (discover, load, lint).
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// stage accumulates per-file work that happens inside a phase, possibly on
// several goroutines at once.
type stage struct {
	count int
	total time.Duration
	max   time.Duration
}

// Timer records run phases and per-file stage durations. Safe for concurrent
// use.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	stages map[string]*stage
}

func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 4), stages: make(map[string]*stage)}
}

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index. Unknown indexes are ignored.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Observe adds one file's time in stage name (parse, rules, cache).
func (t *Timer) Observe(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.stages[name]
	if !ok {
		s = &stage{}
		t.stages[name] = s
	}
	s.count++
	s.total += d
	s.max = max(s.max, d)
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// StageReport sums one stage over every file that went through it. With
// parallel workers TotalMS may exceed the wall time of the enclosing phase.
type StageReport struct {
	Name    string  `json:"name"`
	Files   int     `json:"files"`
	TotalMS float64 `json:"total_ms"`
	MaxMS   float64 `json:"max_ms"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
	Stages  []StageReport `json:"stages,omitempty"`
}

// Report снимает текущее состояние: фазы в порядке запуска, стадии по имени.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 && len(t.stages) == 0 {
		return Report{}
	}
	var report Report
	var total time.Duration
	for _, phase := range t.phases {
		total += phase.Dur
		report.Phases = append(report.Phases, PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		})
	}
	report.TotalMS = durationToMillis(total)

	names := make([]string, 0, len(t.stages))
	for name := range t.stages {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		s := t.stages[name]
		report.Stages = append(report.Stages, StageReport{
			Name:    name,
			Files:   s.count,
			TotalMS: durationToMillis(s.total),
			MaxMS:   durationToMillis(s.max),
		})
	}
	return report
}

// Write renders the report as an indented table under header.
func (r Report) Write(w io.Writer, header string) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, p := range r.Phases {
		line := fmt.Sprintf("  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, s := range r.Stages {
		if _, err := fmt.Fprintf(w, "  %-10s %8.2f ms  // %d files, max %.2f ms\n", "."+s.Name, s.TotalMS, s.Files, s.MaxMS); err != nil {
			return err
		}
	}
	return nil
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
