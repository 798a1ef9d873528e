// Package titlecase converts token runs to headline-style title case:
// every word is capitalised except articles, prepositions and short
// coordinating conjunctions, which stay lowercase unless they open or close
// the run.
package titlecase

import (
	"slices"
	"strings"
	"unicode"

	"quill/internal/dict"
	"quill/internal/parsers"
	"quill/internal/token"
)

var minorConjunctions = map[string]bool{
	"and": true, "but": true, "for": true, "or": true, "nor": true,
}

// Make returns the title-cased text of the run covered by toks. Only Word
// tokens are recased; numbers count as words for first/last detection.
func Make(toks []token.Token, src []rune, d dict.Dictionary) []rune {
	sp, ok := token.SpanOf(toks)
	if !ok {
		return []rune{}
	}
	out := slices.Clone(sp.Content(src))

	var words []int
	for i := range token.WordLikes(toks) {
		words = append(words, i)
	}
	for n, i := range words {
		t := toks[i]
		if !t.IsWord() {
			continue
		}
		word := t.Runes(src)
		off := t.Span.Start - sp.Start
		if int(off)+len(word) > len(out) {
			continue
		}
		dst := out[off : int(off)+len(word)]
		if n == 0 || n == len(words)-1 || shouldCapitalize(t, string(word), d) {
			capitalize(dst, word)
		} else {
			lower(dst, word)
		}
	}
	return out
}

// MakeString tokenizes s with p (PlainEnglish when nil) and title-cases it.
func MakeString(s string, p parsers.Parser, d dict.Dictionary) string {
	if p == nil {
		p = parsers.PlainEnglish{}
	}
	src := []rune(s)
	return string(Make(p.Parse(src), src, d))
}

func shouldCapitalize(t token.Token, word string, d dict.Dictionary) bool {
	lw := strings.ToLower(word)
	meta := t.Meta()
	if d != nil {
		meta = meta.Or(d.Metadata(lw))
	}
	return !meta.IsPreposition() && !meta.IsArticle() && !minorConjunctions[lw]
}

func capitalize(dst, word []rune) {
	for i, r := range word {
		if i == 0 {
			dst[i] = unicode.ToUpper(r)
			continue
		}
		dst[i] = unicode.ToLower(r)
	}
}

func lower(dst, word []rune) {
	for i, r := range word {
		dst[i] = unicode.ToLower(r)
	}
}
