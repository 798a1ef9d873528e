package report

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"quill/internal/linting"
	"quill/internal/source"
)

type suggestionPreview struct {
	before []string
	after  []string
}

// buildPreview renders the lines touched by span before and after applying s.
func buildPreview(f *source.File, span source.Span, s linting.Suggestion) (suggestionPreview, error) {
	if f == nil {
		return suggestionPreview{}, fmt.Errorf("nil file")
	}
	lenText, err := safecast.Conv[uint32](len(f.Text))
	if err != nil {
		return suggestionPreview{}, fmt.Errorf("len file text overflow: %w", err)
	}
	if span.End > lenText || span.Start > span.End {
		return suggestionPreview{}, fmt.Errorf("span %s out of range", span)
	}

	startPos, endPos := f.Resolve(span)
	blockStart := lineStartOffset(f, startPos.Line, lenText)
	blockEnd := min(max(lineEndOffset(f, endPos.Line, lenText), blockStart), lenText)

	original := f.Text[blockStart:blockEnd]
	local := source.Span{Start: span.Start - blockStart, End: span.End - blockStart}
	after := s.Apply(local, original)

	return suggestionPreview{
		before: splitPreviewLines(string(original)),
		after:  splitPreviewLines(string(after)),
	}, nil
}

func splitPreviewLines(text string) []string {
	if text == "" {
		return nil
	}
	// хвостовой \n не даёт лишней пустой строки
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

func lineStartOffset(f *source.File, line, lenText uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return lenText
}

func lineEndOffset(f *source.File, line, lenText uint32) uint32 {
	if line == 0 {
		return 0
	}
	idx := line - 1
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return lenText
}
