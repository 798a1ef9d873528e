package fix

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"quill/internal/linting"
	"quill/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeAll applies the preferred suggestion of every lint.
	ApplyModeAll ApplyMode = iota
	// ApplyModeOnce applies the first fix in document order.
	ApplyModeOnce
	// ApplyModeRule applies fixes of a single rule.
	ApplyModeRule
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode ApplyMode
	Rule string
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Rule    string
	Title   string
	Message string
	Span    source.Span
	Path    string
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	Rule   string
	Title  string
	Span   source.Span
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// TextResult is the outcome of fixing one in-memory buffer.
type TextResult struct {
	Text    []rune
	Edits   []TextEdit // accepted edits, sorted by span
	Applied []AppliedFix
	Skipped []SkippedFix
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

// Batch pairs a file with the lints produced for its current content.
type Batch struct {
	File  source.FileID
	Lints []linting.Lint
}

type candidate struct {
	lint  linting.Lint
	title string
	edit  TextEdit
	order int
}

// ApplyText applies fixes to src and returns the new buffer. src is not modified.
func ApplyText(src []rune, lints []linting.Lint, opts ApplyOptions) (*TextResult, error) {
	result := &TextResult{Text: src}

	candidates, skips := gatherCandidates(src, lints)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	sortCandidates(candidates)
	selected, skips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	out, edits, applied, skips := applyCandidates(src, selected)
	result.Text = out
	result.Edits = edits
	result.Applied = applied
	result.Skipped = append(result.Skipped, skips...)
	if len(applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// Apply fixes every batch and writes changed files back to disk.
func Apply(fs *source.FileSet, batches []Batch, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}
	baseDir := fs.BaseDir()

	for _, b := range batches {
		file := fs.Get(b.File)
		if file == nil {
			return result, fmt.Errorf("fix: unknown file id %d", b.File)
		}
		path := file.FormatPath("relative", baseDir)

		res, err := ApplyText(file.Text, b.Lints, opts)
		for _, s := range res.Skipped {
			s.Title = path + ": " + s.Title
			result.Skipped = append(result.Skipped, s)
		}
		if errors.Is(err, ErrNoFixes) {
			continue
		}
		if file.Flags&source.FileVirtual != 0 {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  path,
				Reason: "target file is virtual",
			})
			continue
		}
		if err := writeFile(file, res.Edits); err != nil {
			if errors.Is(err, source.ErrUnmappable) {
				result.Skipped = append(result.Skipped, SkippedFix{Title: path, Reason: err.Error()})
				continue
			}
			return result, err
		}
		for _, a := range res.Applied {
			a.Path = path
			result.Applied = append(result.Applied, a)
		}
		result.FileChanges = append(result.FileChanges, FileChange{Path: path, EditCount: len(res.Applied)})
		if opts.Mode == ApplyModeOnce {
			break
		}
	}

	sort.SliceStable(result.FileChanges, func(i, j int) bool {
		return result.FileChanges[i].Path < result.FileChanges[j].Path
	})
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// writeFile splices edits into the bytes the file was read from; everything
// outside the edits is written back unchanged.
func writeFile(file *source.File, edits []TextEdit) error {
	raw := make([]source.Edit, len(edits))
	for i, e := range edits {
		raw[i] = source.Edit{Span: e.Span, NewText: e.NewText}
	}
	content, err := file.Restore(raw)
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(file.Path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(file.Path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	return nil
}

// gatherCandidates builds one candidate per lint from its preferred suggestion.
func gatherCandidates(src []rune, lints []linting.Lint) ([]candidate, []SkippedFix) {
	cands := make([]candidate, 0, len(lints))
	skips := make([]SkippedFix, 0)
	for i, l := range lints {
		s, ok := l.Preferred()
		if !ok {
			skips = append(skips, SkippedFix{
				Rule:   l.Rule,
				Title:  l.Message,
				Span:   l.Span,
				Reason: "lint has no suggestions",
			})
			continue
		}
		cands = append(cands, candidate{
			lint:  l,
			title: s.String(),
			edit:  FromSuggestion(l, s, src),
			order: i,
		})
	}
	return cands, skips
}

// sortCandidates orders by span start, span end, priority, then input order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ei, ej := candidates[i].edit.Span, candidates[j].edit.Span
		if ei.Start != ej.Start {
			return ei.Start < ej.Start
		}
		if ei.End != ej.End {
			return ei.End < ej.End
		}
		if pi, pj := candidates[i].lint.Priority, candidates[j].lint.Priority; pi != pj {
			return pi < pj
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeOnce:
		return candidates[:1], nil
	case ApplyModeRule:
		selected := make([]candidate, 0, len(candidates))
		for _, c := range candidates {
			if c.lint.Rule == opts.Rule {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			return nil, []SkippedFix{{Rule: opts.Rule, Reason: "no fixes for rule"}}
		}
		return selected, nil
	default:
		return candidates, nil
	}
}

// applyCandidates applies non-conflicting edits back to front over a copy of src.
func applyCandidates(src []rune, selected []candidate) ([]rune, []TextEdit, []AppliedFix, []SkippedFix) {
	limit := uint32(len(src))
	var accepted []candidate
	var edits []TextEdit
	skipped := make([]SkippedFix, 0)

	for _, c := range selected {
		reason := ""
		switch {
		case c.edit.Span.End > limit || c.edit.Span.End < c.edit.Span.Start:
			reason = "edit span out of range"
		case c.edit.OldText != "" && c.edit.Span.ContentString(src) != c.edit.OldText:
			reason = "existing text does not match expected content"
		case conflictsWithExisting(edits, c.edit):
			reason = "conflicts with previously applied edits"
		}
		if reason != "" {
			skipped = append(skipped, SkippedFix{
				Rule:   c.lint.Rule,
				Title:  c.title,
				Span:   c.lint.Span,
				Reason: reason,
			})
			continue
		}
		accepted = append(accepted, c)
		edits = insertEditSorted(edits, c.edit)
	}

	out := slices.Clone(src)
	// с конца, чтобы смещения более ранних правок не сдвигались
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out = slices.Replace(out, int(e.Span.Start), int(e.Span.End), []rune(e.NewText)...)
	}

	applied := make([]AppliedFix, 0, len(accepted))
	for _, c := range accepted {
		applied = append(applied, AppliedFix{
			Rule:    c.lint.Rule,
			Title:   c.title,
			Message: c.lint.Message,
			Span:    c.lint.Span,
		})
	}
	return out, edits, applied, skipped
}

func conflictsWithExisting(existing []TextEdit, edit TextEdit) bool {
	for _, prev := range existing {
		if spansConflict(prev, edit) {
			return true
		}
	}
	return false
}

// spansConflict reports whether two text edits' spans overlap.
// Spans are treated as half-open intervals [Start, End). Two zero-length edits
// (Start == End) never conflict. A zero-length edit conflicts with a non-zero
// span if its position is within that span (Start <= pos < End). For two
// non-zero spans, any overlap yields a conflict.
func spansConflict(a, b TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

func insertEditSorted(edits []TextEdit, edit TextEdit) []TextEdit {
	insertIdx := sort.Search(len(edits), func(i int) bool {
		if edits[i].Span.Start == edit.Span.Start {
			return edits[i].Span.End > edit.Span.End
		}
		return edits[i].Span.Start > edit.Span.Start
	})
	return slices.Insert(edits, insertIdx, edit)
}
