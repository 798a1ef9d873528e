package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/driver"
	"quill/internal/linting"
	"quill/internal/source"
)

const tabWidth = 4

// painter bundles the colors used by Pretty; all of them are plain when
// color is off.
type painter struct {
	path, gutter, caret, rule, hint *color.Color
	urgent, warn, note              *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		rule:   color.New(color.Faint),
		hint:   color.New(color.FgGreen),
		urgent: color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.gutter, p.caret, p.rule, p.hint, p.urgent, p.warn, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p painter) priority(pr linting.Priority) *color.Color {
	switch {
	case pr <= linting.PriorityHigh:
		return p.urgent
	case pr <= linting.PriorityDefault:
		return p.warn
	}
	return p.note
}

// Pretty renders lints in a human-readable form:
//
//	<path>:<line>:<col>: <kind>[<rule>]: <message>
//	   3 | line text
//	     | ^^^^
//	     = suggestion: Replace with “x”
func Pretty(w io.Writer, run *driver.Run, opts PrettyOpts) error {
	p := newPainter(opts.Color)
	items, files := collect(run, opts.Max)
	for i, it := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, p, run.FileSet, it, opts); err != nil {
			return err
		}
	}
	if opts.Summary {
		total := run.LintCount()
		if len(items) > 0 {
			fmt.Fprintln(w)
		}
		switch {
		case total == 0:
			_, _ = p.hint.Fprintln(w, "no lints")
		case opts.Max > 0 && total > len(items):
			fmt.Fprintf(w, "%s in %s (showing %d)\n", plural(total, "lint"), plural(files, "file"), len(items))
		default:
			fmt.Fprintf(w, "%s in %s\n", plural(total, "lint"), plural(files, "file"))
		}
	}
	return nil
}

func prettyOne(w io.Writer, p painter, fs *source.FileSet, it item, opts PrettyOpts) error {
	l := it.lint
	start, end := it.file.Resolve(l.Span)
	header := fmt.Sprintf("%s:%d:%d:", formatPath(it.file, fs, opts.PathMode), start.Line, start.Col)
	if _, err := fmt.Fprintf(w, "%s %s%s: %s\n",
		p.path.Sprint(header),
		p.priority(l.Priority).Sprint(l.Kind.String()),
		p.rule.Sprintf("[%s]", l.Rule),
		l.Message,
	); err != nil {
		return err
	}

	line := it.file.GetLine(start.Line)
	gutterWidth := len(fmt.Sprint(start.Line)) + 1
	pad := strings.Repeat(" ", gutterWidth)
	fmt.Fprintf(w, "%s %s %s\n", p.gutter.Sprintf("%*d", gutterWidth, start.Line), p.gutter.Sprint("|"), expandTabs(line))

	// подчёркивание только в пределах первой строки
	lineRunes := []rune(line)
	from := min(int(start.Col)-1, len(lineRunes))
	to := len(lineRunes)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(lineRunes))
	}
	offset := runewidth.StringWidth(expandTabs(string(lineRunes[:from])))
	width := max(runewidth.StringWidth(expandTabs(string(lineRunes[from:to]))), 1)
	fmt.Fprintf(w, "%s %s %s%s\n", pad, p.gutter.Sprint("|"), strings.Repeat(" ", offset), p.caret.Sprint(strings.Repeat("^", width)))

	if !opts.ShowSuggestions {
		return nil
	}
	for _, s := range l.Suggestions {
		fmt.Fprintf(w, "%s %s %s\n", pad, p.gutter.Sprint("="), p.hint.Sprintf("suggestion: %s", s))
		if !opts.ShowPreview {
			continue
		}
		preview, err := buildPreview(it.file, l.Span, s)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s   preview:\n", pad)
		for _, b := range preview.before {
			fmt.Fprintf(w, "%s   - %s\n", pad, b)
		}
		for _, a := range preview.after {
			fmt.Fprintf(w, "%s   + %s\n", pad, a)
		}
	}
	return nil
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
