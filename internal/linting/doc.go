// Package linting defines the lint model and the machinery that produces it.
//
// # Data model
//
// Lint is the central record. It contains:
//
//   - Span – the rune range the lint points at.
//   - Kind – coarse classification (spelling, capitalization, word choice...).
//   - Suggestions – ordered candidate edits; the first is the preferred one.
//   - Message – short human text.
//   - Priority – lower values are more important; see priority.go.
//   - Rule – name of the rule that produced the lint, filled by LintGroup.
//
// Suggestions are data only. The engine never edits a document; hosts such
// as internal/fix decide which suggestions to apply.
//
// # Producing lints
//
// A Linter inspects a whole document. Most rules are PatternLinters: a
// patterns.Pattern plus a MatchToLint callback that turns each matched token
// run into a Lint (or vetoes it). RunPattern drives the scan: left to right,
// resuming after each match, never reporting matches that touch Unlintable
// tokens.
//
// LintGroup is a named, configurable collection of linters. It holds no
// per-document state and can be shared between goroutines once configured.
package linting
