package morph

// PartOfSpeech is the grammatical category of a word.
type PartOfSpeech uint8

const (
	POSNoun PartOfSpeech = iota
	POSPronoun
	POSVerb
	POSAdjective
	POSAdverb
	POSConjunction
	POSArticle
	POSPreposition
)

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSPronoun:
		return "pronoun"
	case POSVerb:
		return "verb"
	case POSAdjective:
		return "adjective"
	case POSAdverb:
		return "adverb"
	case POSConjunction:
		return "conjunction"
	case POSArticle:
		return "article"
	case POSPreposition:
		return "preposition"
	}
	return "unknown"
}

// Tense of a verb form.
type Tense uint8

const (
	TenseUnknown Tense = iota
	TensePresent
	TensePast
)

func (t Tense) Or(other Tense) Tense {
	if t != TenseUnknown {
		return t
	}
	return other
}

type NounData struct {
	IsProper     Flag
	IsPlural     Flag
	IsPossessive Flag
}

func (n NounData) Or(other NounData) NounData {
	return NounData{
		IsProper:     n.IsProper.Or(other.IsProper),
		IsPlural:     n.IsPlural.Or(other.IsPlural),
		IsPossessive: n.IsPossessive.Or(other.IsPossessive),
	}
}

type PronounData struct {
	IsPlural     Flag
	IsPossessive Flag
}

func (p PronounData) Or(other PronounData) PronounData {
	return PronounData{
		IsPlural:     p.IsPlural.Or(other.IsPlural),
		IsPossessive: p.IsPossessive.Or(other.IsPossessive),
	}
}

type VerbData struct {
	IsLinking Flag
	Tense     Tense
}

func (v VerbData) Or(other VerbData) VerbData {
	return VerbData{
		IsLinking: v.IsLinking.Or(other.IsLinking),
		Tense:     v.Tense.Or(other.Tense),
	}
}

type AdjectiveData struct {
	IsComparative Flag
	IsSuperlative Flag
}

func (a AdjectiveData) Or(other AdjectiveData) AdjectiveData {
	return AdjectiveData{
		IsComparative: a.IsComparative.Or(other.IsComparative),
		IsSuperlative: a.IsSuperlative.Or(other.IsSuperlative),
	}
}

type AdverbData struct{}

type ConjunctionData struct{}
