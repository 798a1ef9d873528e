// Package letsconfusion flags "lets"/"let" used where "let's" or "let us"
// was meant.
package letsconfusion

import (
	"quill/internal/linting"
	"quill/internal/patterns"
	"quill/internal/token"
)

// NoContractionWithVerb flags "let" or "lets" directly followed by a verb.
type NoContractionWithVerb struct {
	pattern patterns.Pattern
}

func NewNoContractionWithVerb() *NoContractionWithVerb {
	return &NoContractionWithVerb{
		pattern: patterns.NewSequence().
			ThenWordSet("lets", "let").
			ThenWhitespace().
			ThenVerb(),
	}
}

func (l *NoContractionWithVerb) Pattern() patterns.Pattern { return l.pattern }

// MatchToLint reports only the first word of the match.
func (l *NoContractionWithVerb) MatchToLint(matched []token.Token, src []rune) (linting.Lint, bool) {
	if len(matched) == 0 {
		return linting.Lint{}, false
	}
	span := matched[0].Span
	template := span.Content(src)
	return linting.Lint{
		Span: span,
		Kind: linting.KindWordChoice,
		Suggestions: []linting.Suggestion{
			linting.ReplaceWithMatchCase("let's", template),
			linting.ReplaceWithMatchCase("let us", template),
		},
		Message:  "It seems you forgot to include a subject here.",
		Priority: linting.PriorityDefault,
	}, true
}

func (l *NoContractionWithVerb) Description() string {
	return "Make sure you include a subject when giving permission to it."
}

// LintGroup returns the rules of this package, all enabled.
func LintGroup() *linting.LintGroup {
	return linting.NewLintGroup().AddPattern("NoContractionWithVerb", NewNoContractionWithVerb())
}
