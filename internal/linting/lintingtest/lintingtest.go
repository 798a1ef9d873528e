// Package lintingtest holds assertions shared by rule catalogue tests.
package lintingtest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"quill/internal/dict"
	"quill/internal/document"
	"quill/internal/fix"
	"quill/internal/linting"
	"quill/internal/parsers"
)

// maxRounds bounds the fix loop for rules whose suggestions keep matching.
const maxRounds = 100

// Doc parses text as Markdown against the curated dictionary.
func Doc(text string) *document.Document {
	return document.New(text, parsers.Markdown{}, dict.Curated())
}

// AssertLintCount checks that l reports exactly want lints on text.
func AssertLintCount(t testing.TB, text string, l linting.Linter, want int) bool {
	t.Helper()
	lints := l.Lint(Doc(text))
	return assert.Len(t, lints, want, "lints for %q: %v", text, lints)
}

// AssertSuggestionResult repeatedly applies the top suggestion of the first
// lint until none remain, then compares the result with want.
func AssertSuggestionResult(t testing.TB, text string, l linting.Linter, want string) bool {
	t.Helper()
	return assert.Equal(t, want, TransformTopSuggestion(text, l))
}

// TransformTopSuggestion runs the fix loop used by AssertSuggestionResult.
func TransformTopSuggestion(text string, l linting.Linter) string {
	src := []rune(text)
	for range maxRounds {
		lints := l.Lint(document.NewFromRunes(src, parsers.Markdown{}, dict.Curated()))
		if len(lints) == 0 {
			break
		}
		res, err := fix.ApplyText(src, lints[:1], fix.ApplyOptions{Mode: fix.ApplyModeOnce})
		if errors.Is(err, fix.ErrNoFixes) {
			break
		}
		src = res.Text
	}
	return string(src)
}
