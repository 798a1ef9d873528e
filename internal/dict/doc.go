// Package dict provides the dictionary capability consumed by documents,
// patterns and title casing: per-word metadata lookup and membership.
//
// Dictionaries are immutable once built and safe for concurrent use; a single
// value is shared by reference across documents and linters.
//
// Word lists use one entry per line in the form "word/FLAGS" (flags optional,
// '#' starts a comment). Flags:
//
//	N noun          O proper noun    S plural noun    G possessive noun
//	V verb          L linking verb   D past tense
//	J adjective     R adverb         U pronoun        C conjunction
//	A article       E preposition
package dict
