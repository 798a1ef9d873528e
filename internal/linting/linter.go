package linting

import (
	"quill/internal/document"
	"quill/internal/patterns"
	"quill/internal/token"
)

// Linter inspects a document and reports lints. Implementations must not
// keep per-document state.
type Linter interface {
	Lint(doc *document.Document) []Lint
	Description() string
}

// PatternLinter is a rule expressed as a pattern plus a conversion from each
// matched token run to a Lint. MatchToLint may veto a match.
type PatternLinter interface {
	Pattern() patterns.Pattern
	MatchToLint(matched []token.Token, src []rune) (Lint, bool)
	Description() string
}

// RunPattern scans toks left to right. After a match the scan resumes at the
// first token past it; a failed or zero-length match advances by one token.
// Matches containing an Unlintable token are never reported.
func RunPattern(pl PatternLinter, toks []token.Token, src []rune) []Lint {
	var out []Lint
	p := pl.Pattern()
	for i := 0; i < len(toks); {
		n, ok := p.Matches(toks[i:], src)
		if !ok || n <= 0 || n > len(toks)-i {
			i++
			continue
		}
		matched := toks[i : i+n]
		if token.ContainsUnlintable(matched) {
			i++
			continue
		}
		if lint, ok := pl.MatchToLint(matched, src); ok {
			out = append(out, lint)
		}
		i += n
	}
	return out
}

// FromPattern adapts a PatternLinter into a Linter.
func FromPattern(pl PatternLinter) Linter {
	return patternLinter{pl}
}

type patternLinter struct {
	PatternLinter
}

func (l patternLinter) Lint(doc *document.Document) []Lint {
	return RunPattern(l.PatternLinter, doc.Tokens(), doc.Source())
}

// Func adapts a function into a Linter.
type Func struct {
	Fn   func(doc *document.Document) []Lint
	Desc string
}

func (f Func) Lint(doc *document.Document) []Lint { return f.Fn(doc) }
func (f Func) Description() string                { return f.Desc }
