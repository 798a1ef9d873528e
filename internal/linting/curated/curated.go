// Package curated assembles the default rule set.
package curated

import (
	"quill/internal/dict"
	"quill/internal/linting"
	"quill/internal/linting/letsconfusion"
	"quill/internal/linting/phrases"
	"quill/internal/linting/propernoun"
)

// LintGroup merges every catalogue into one group with recommended defaults.
// d is used for title-case decisions; nil means the curated dictionary.
func LintGroup(d dict.Dictionary) *linting.LintGroup {
	if d == nil {
		d = dict.Curated()
	}
	return linting.NewLintGroup().
		Merge(phrases.LintGroup()).
		Merge(propernoun.LintGroup(d)).
		Merge(letsconfusion.LintGroup())
}
