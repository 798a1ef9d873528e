package main

import (
	"fmt"
	"io"

	"quill/internal/driver"
)

func printTimings(out io.Writer, run *driver.Run, kind string) {
	if out == nil || run == nil {
		return
	}
	msg, _, err := driver.TimingSummary(run.TimingPayload(kind, ""))
	if err != nil {
		return
	}
	if err := run.Timing.Write(out, msg); err != nil {
		return
	}
	if stats := run.Cache; stats.Hits+stats.Misses > 0 {
		fmt.Fprintf(out, "  cache      %d hits, %d misses\n", stats.Hits, stats.Misses)
	}
}
