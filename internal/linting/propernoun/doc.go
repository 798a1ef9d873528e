// Package propernoun flags place names, organisations, holidays and product
// names that are not written as proper nouns.
package propernoun
