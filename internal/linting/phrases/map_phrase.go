package phrases

import (
	"fmt"

	"quill/internal/linting"
	"quill/internal/patterns"
	"quill/internal/token"
)

// MapPhraseLinter flags any of a set of phrases and suggests fixed
// corrections, recast to the casing of the matched text.
type MapPhraseLinter struct {
	pattern     patterns.Pattern
	inputs      []string
	corrections []string
	message     string
	description string
}

// NewExactPhrases builds a linter matching every phrase in inputs under any
// capitalization.
func NewExactPhrases(inputs, corrections []string, message, description string) *MapPhraseLinter {
	alts := patterns.NewEither()
	for _, in := range inputs {
		alts.Or(patterns.Phrase(in))
	}
	return &MapPhraseLinter{
		pattern:     alts,
		inputs:      inputs,
		corrections: corrections,
		message:     message,
		description: description,
	}
}

func (l *MapPhraseLinter) Pattern() patterns.Pattern { return l.pattern }

func (l *MapPhraseLinter) MatchToLint(matched []token.Token, src []rune) (linting.Lint, bool) {
	span, ok := token.SpanOf(matched)
	if !ok {
		return linting.Lint{}, false
	}
	original := span.Content(src)
	suggestions := make([]linting.Suggestion, 0, len(l.corrections))
	for _, c := range l.corrections {
		suggestions = append(suggestions, linting.ReplaceWithMatchCase(c, original))
	}
	return linting.Lint{
		Span:        span,
		Kind:        linting.KindMiscellaneous,
		Suggestions: suggestions,
		Message:     l.message,
		Priority:    linting.PriorityDefault,
	}, true
}

func (l *MapPhraseLinter) Description() string { return l.description }

func (l *MapPhraseLinter) Fingerprint() string {
	return fmt.Sprintf("phrases%q corrections%q message%q", l.inputs, l.corrections, l.message)
}
