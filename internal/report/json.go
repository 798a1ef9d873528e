package report

import (
	"encoding/json"
	"io"

	"quill/internal/driver"
)

// SuggestionJSON is one candidate edit.
type SuggestionJSON struct {
	Kind        string   `json:"kind"`
	Text        string   `json:"text"`
	Title       string   `json:"title"`
	BeforeLines []string `json:"before_lines,omitempty"`
	AfterLines  []string `json:"after_lines,omitempty"`
}

// LintJSON is one lint in JSON output.
type LintJSON struct {
	Rule        string           `json:"rule"`
	Kind        string           `json:"kind"`
	Priority    uint8            `json:"priority"`
	Message     string           `json:"message"`
	Matched     string           `json:"matched"`
	Location    LocationJSON     `json:"location"`
	Suggestions []SuggestionJSON `json:"suggestions"`
}

// FileErrorJSON reports a file that could not be linted.
type FileErrorJSON struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// LintsOutput is the root of JSON output.
type LintsOutput struct {
	Lints  []LintJSON      `json:"lints"`
	Count  int             `json:"count"`
	Total  int             `json:"total"`
	Files  int             `json:"files"`
	Errors []FileErrorJSON `json:"errors,omitempty"`
}

// BuildLintsOutput builds the JSON structure without serializing it.
func BuildLintsOutput(run *driver.Run, opts JSONOpts) LintsOutput {
	items, _ := collect(run, opts.Max)
	out := LintsOutput{
		Lints: make([]LintJSON, 0, len(items)),
		Total: run.LintCount(),
		Files: len(run.Results),
	}
	for _, it := range items {
		l := it.lint
		lj := LintJSON{
			Rule:        l.Rule,
			Kind:        l.Kind.String(),
			Priority:    uint8(l.Priority),
			Message:     l.Message,
			Matched:     l.Span.ContentString(it.file.Text),
			Location:    makeLocation(it.file, run.FileSet, l.Span, opts.PathMode, opts.IncludePositions),
			Suggestions: make([]SuggestionJSON, 0, len(l.Suggestions)),
		}
		for _, s := range l.Suggestions {
			sj := SuggestionJSON{Kind: s.Kind.String(), Text: s.Text, Title: s.String()}
			if opts.IncludePreviews {
				if preview, err := buildPreview(it.file, l.Span, s); err == nil {
					sj.BeforeLines = preview.before
					sj.AfterLines = preview.after
				}
			}
			lj.Suggestions = append(lj.Suggestions, sj)
		}
		out.Lints = append(out.Lints, lj)
	}
	out.Count = len(out.Lints)
	for _, res := range run.Results {
		if res.Err != nil {
			out.Errors = append(out.Errors, FileErrorJSON{File: res.Path, Error: res.Err.Error()})
		}
	}
	return out
}

// JSON writes lints as indented JSON.
func JSON(w io.Writer, run *driver.Run, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildLintsOutput(run, opts))
}
