// Package morph holds the per-word morphological metadata attached to word
// tokens: part of speech sub-records and the article/preposition flags used
// by pattern predicates and title casing.
//
// Every field is optional. A dictionary supplies what it knows; a format
// adapter may pre-fill fields it can infer from syntax. WordMetadata.Or merges
// two records so that fields set on the receiver win.
package morph
