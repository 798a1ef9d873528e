package report

import (
	"quill/internal/driver"
	"quill/internal/linting"
	"quill/internal/source"
)

// LocationJSON is a position inside a file. Offsets count characters.
type LocationJSON struct {
	File      string `json:"file"`
	StartChar uint32 `json:"start_char"`
	EndChar   uint32 `json:"end_char"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	default:
		return f.Path
	}
}

func makeLocation(f *source.File, fs *source.FileSet, span source.Span, mode PathMode, positions bool) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(f, fs, mode),
		StartChar: span.Start,
		EndChar:   span.End,
	}
	if positions {
		start, end := f.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// item is one lint together with the file it was found in.
type item struct {
	file *source.File
	lint linting.Lint
}

// collect flattens a run into render order, honouring max. Files keep their
// run order and lints are sorted by position inside each file.
func collect(run *driver.Run, maxItems int) (items []item, files int) {
	for _, res := range run.Results {
		if res.Err != nil || len(res.Lints) == 0 {
			continue
		}
		f := run.FileSet.Get(res.FileID)
		if f == nil {
			continue
		}
		files++
		lints := append([]linting.Lint(nil), res.Lints...)
		linting.SortLintsBySpan(lints)
		for _, l := range lints {
			if maxItems > 0 && len(items) >= maxItems {
				return items, files
			}
			items = append(items, item{file: f, lint: l})
		}
	}
	return items, files
}
