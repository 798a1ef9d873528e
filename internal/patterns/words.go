package patterns

import (
	"strings"

	"quill/internal/morph"
	"quill/internal/token"
)

// WordSet matches one word from a fixed set, ignoring case.
type WordSet struct {
	words map[string]struct{}
}

func NewWordSet(words ...string) *WordSet {
	ws := &WordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		ws.words[strings.ToLower(w)] = struct{}{}
	}
	return ws
}

func (ws *WordSet) Contains(word string) bool {
	_, ok := ws.words[strings.ToLower(word)]
	return ok
}

func (ws *WordSet) Matches(toks []token.Token, src []rune) (int, bool) {
	if len(toks) == 0 || !toks[0].IsWord() || !ws.Contains(toks[0].Text(src)) {
		return 0, false
	}
	return 1, true
}

// AnyCapitalizationOf matches one word equal to word under any casing.
func AnyCapitalizationOf(word string) Pattern {
	return single(func(t token.Token, src []rune) bool {
		return t.IsWord() && strings.EqualFold(t.Text(src), word)
	})
}

// ExactWord matches one word with exactly this spelling and casing.
func ExactWord(word string) Pattern {
	return single(func(t token.Token, src []rune) bool {
		return t.IsWord() && t.Text(src) == word
	})
}

// AnyWord matches any single word token.
func AnyWord() Pattern {
	return single(func(t token.Token, _ []rune) bool { return t.IsWord() })
}

// exactText matches one word-like token with the given literal text, ignoring case.
func exactText(text string) Pattern {
	return single(func(t token.Token, src []rune) bool {
		return t.IsWordLike() && strings.EqualFold(t.Text(src), text)
	})
}

// WordPredicate matches one word whose metadata satisfies pred.
func WordPredicate(pred func(morph.WordMetadata) bool) Pattern {
	return single(func(t token.Token, _ []rune) bool {
		return t.IsWord() && pred(t.Meta())
	})
}

func Verb() Pattern      { return WordPredicate(morph.WordMetadata.IsVerb) }
func Noun() Pattern      { return WordPredicate(morph.WordMetadata.IsNoun) }
func Adjective() Pattern { return WordPredicate(morph.WordMetadata.IsAdjective) }
func Adverb() Pattern    { return WordPredicate(morph.WordMetadata.IsAdverb) }
func Pronoun() Pattern   { return WordPredicate(morph.WordMetadata.IsPronoun) }
