package morph

import "strings"

// WordMetadata describes what is known about a single word. A nil sub-record
// means the word is not (known to be) of that part of speech.
type WordMetadata struct {
	Noun        *NounData
	Pronoun     *PronounData
	Verb        *VerbData
	Adjective   *AdjectiveData
	Adverb      *AdverbData
	Conjunction *ConjunctionData
	Article     Flag
	Preposition Flag
}

// Or merges two records. Fields set on m take precedence; anything m leaves
// unset falls back to other. The result never aliases either input.
func (m WordMetadata) Or(other WordMetadata) WordMetadata {
	return WordMetadata{
		Noun:        orPtr(m.Noun, other.Noun, NounData.Or),
		Pronoun:     orPtr(m.Pronoun, other.Pronoun, PronounData.Or),
		Verb:        orPtr(m.Verb, other.Verb, VerbData.Or),
		Adjective:   orPtr(m.Adjective, other.Adjective, AdjectiveData.Or),
		Adverb:      orPtr(m.Adverb, other.Adverb, func(a, _ AdverbData) AdverbData { return a }),
		Conjunction: orPtr(m.Conjunction, other.Conjunction, func(c, _ ConjunctionData) ConjunctionData { return c }),
		Article:     m.Article.Or(other.Article),
		Preposition: m.Preposition.Or(other.Preposition),
	}
}

func orPtr[T any](a, b *T, merge func(T, T) T) *T {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	}
	v := merge(*a, *b)
	return &v
}

// Clone returns a deep copy of m.
func (m WordMetadata) Clone() WordMetadata {
	return m.Or(WordMetadata{})
}

// IsEmpty reports whether nothing is known about the word.
func (m WordMetadata) IsEmpty() bool {
	return m.Noun == nil && m.Pronoun == nil && m.Verb == nil && m.Adjective == nil &&
		m.Adverb == nil && m.Conjunction == nil && !m.Article.IsSet() && !m.Preposition.IsSet()
}

func (m WordMetadata) IsNoun() bool        { return m.Noun != nil }
func (m WordMetadata) IsPronoun() bool     { return m.Pronoun != nil }
func (m WordMetadata) IsVerb() bool        { return m.Verb != nil }
func (m WordMetadata) IsAdjective() bool   { return m.Adjective != nil }
func (m WordMetadata) IsAdverb() bool      { return m.Adverb != nil }
func (m WordMetadata) IsConjunction() bool { return m.Conjunction != nil }
func (m WordMetadata) IsArticle() bool     { return m.Article.IsTrue() }
func (m WordMetadata) IsPreposition() bool { return m.Preposition.IsTrue() }

func (m WordMetadata) IsProperNoun() bool {
	return m.Noun != nil && m.Noun.IsProper.IsTrue()
}

func (m WordMetadata) IsPossessiveNoun() bool {
	return m.Noun != nil && m.Noun.IsPossessive.IsTrue()
}

func (m WordMetadata) IsPluralNoun() bool {
	return m.Noun != nil && m.Noun.IsPlural.IsTrue()
}

func (m WordMetadata) IsLinkingVerb() bool {
	return m.Verb != nil && m.Verb.IsLinking.IsTrue()
}

// Is reports whether the word carries the given part of speech.
func (m WordMetadata) Is(pos PartOfSpeech) bool {
	switch pos {
	case POSNoun:
		return m.IsNoun()
	case POSPronoun:
		return m.IsPronoun()
	case POSVerb:
		return m.IsVerb()
	case POSAdjective:
		return m.IsAdjective()
	case POSAdverb:
		return m.IsAdverb()
	case POSConjunction:
		return m.IsConjunction()
	case POSArticle:
		return m.IsArticle()
	case POSPreposition:
		return m.IsPreposition()
	}
	return false
}

// PartsOfSpeech lists every category the word belongs to, in enum order.
func (m WordMetadata) PartsOfSpeech() []PartOfSpeech {
	var out []PartOfSpeech
	for pos := POSNoun; pos <= POSPreposition; pos++ {
		if m.Is(pos) {
			out = append(out, pos)
		}
	}
	return out
}

func (m WordMetadata) String() string {
	parts := m.PartsOfSpeech()
	if len(parts) == 0 {
		return "-"
	}
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := p.String()
		switch {
		case p == POSNoun && m.IsProperNoun():
			name += "(proper)"
		case p == POSNoun && m.IsPossessiveNoun():
			name += "(possessive)"
		case p == POSVerb && m.IsLinkingVerb():
			name += "(linking)"
		}
		names = append(names, name)
	}
	return strings.Join(names, ",")
}
