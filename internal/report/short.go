package report

import (
	"fmt"
	"io"

	"quill/internal/driver"
)

// Short prints one line per lint: <path>:<line>:<col>: <rule>: <message>.
// Friendly to editors' quickfix parsers.
func Short(w io.Writer, run *driver.Run, pathMode PathMode, maxItems int) error {
	items, _ := collect(run, maxItems)
	for _, it := range items {
		start, _ := it.file.Resolve(it.lint.Span)
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			formatPath(it.file, run.FileSet, pathMode), start.Line, start.Col, it.lint.Rule, it.lint.Message); err != nil {
			return err
		}
	}
	return nil
}

// Errors prints files that could not be linted, one per line.
func Errors(w io.Writer, run *driver.Run) int {
	n := 0
	for _, res := range run.Results {
		if res.Err == nil {
			continue
		}
		n++
		fmt.Fprintf(w, "%s: %v\n", res.Path, res.Err)
	}
	return n
}
