// Package patterns is a small combinator library for matching token runs.
//
// A Pattern looks at the tokens starting at index 0 of the slice it is given
// and reports how many it consumes. Patterns are stateless values, safe to
// share between goroutines, and never match ParagraphBreak or Unlintable
// tokens unless a pattern is written to accept them explicitly.
package patterns
