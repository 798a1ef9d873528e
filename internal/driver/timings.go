package driver

import (
	"encoding/json"
	"fmt"

	"quill/internal/observ"
)

// TimingPayload is the machine-readable form of a run's phase timings.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	Files   int                  `json:"files"`
	Cached  int                  `json:"cached"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
	Stages  []observ.StageReport `json:"stages,omitempty"`
}

// TimingPayload summarizes the run's timings under kind.
func (r *Run) TimingPayload(kind, path string) TimingPayload {
	if kind == "" {
		kind = "lint"
	}
	cached := 0
	for _, res := range r.Results {
		if res.Cached {
			cached++
		}
	}
	return TimingPayload{
		Kind:    kind,
		Path:    path,
		Files:   len(r.Results),
		Cached:  cached,
		TotalMS: r.Timing.TotalMS,
		Phases:  r.Timing.Phases,
		Stages:  r.Timing.Stages,
	}
}

// TimingSummary renders the payload as a one-line message plus JSON detail.
func TimingSummary(payload TimingPayload) (string, []byte, error) {
	msg := fmt.Sprintf("timings (%s): total %.2f ms, %d files (%d cached)", payload.Kind, payload.TotalMS, payload.Files, payload.Cached)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, payload.Path)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return msg, nil, err
	}
	return msg, data, nil
}
