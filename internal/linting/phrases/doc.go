// Package phrases holds the phrase-correction catalogue: rules that flag a
// fixed multi-word phrase and offer one or more replacements.
package phrases
