package morph

import "testing"

func TestOrPrefersReceiver(t *testing.T) {
	adapter := WordMetadata{Noun: &NounData{IsPossessive: Yes}}
	dict := WordMetadata{
		Noun: &NounData{IsProper: Yes, IsPossessive: No},
		Verb: &VerbData{Tense: TensePast},
	}
	got := adapter.Or(dict)
	if !got.IsPossessiveNoun() {
		t.Fatalf("adapter possessive flag must win")
	}
	if !got.IsProperNoun() {
		t.Fatalf("unset proper flag must fall back to dictionary")
	}
	if !got.IsVerb() || got.Verb.Tense != TensePast {
		t.Fatalf("verb record must come from dictionary")
	}
	if got.Verb == dict.Verb {
		t.Fatalf("merged record must not alias input")
	}
}

func TestFlagOr(t *testing.T) {
	cases := []struct {
		a, b, want Flag
	}{
		{Unset, Yes, Yes},
		{No, Yes, No},
		{Yes, No, Yes},
		{Unset, Unset, Unset},
	}
	for _, tc := range cases {
		if got := tc.a.Or(tc.b); got != tc.want {
			t.Errorf("%v.Or(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPartsOfSpeech(t *testing.T) {
	m := WordMetadata{
		Noun:        &NounData{},
		Verb:        &VerbData{IsLinking: Yes},
		Preposition: Yes,
	}
	got := m.PartsOfSpeech()
	want := []PartOfSpeech{POSNoun, POSVerb, POSPreposition}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if s := m.String(); s != "noun,verb(linking),preposition" {
		t.Fatalf("String() = %q", s)
	}
	if (WordMetadata{}).String() != "-" {
		t.Fatalf("empty metadata renders as -")
	}
	if !(WordMetadata{}).IsEmpty() || m.IsEmpty() {
		t.Fatalf("IsEmpty mismatch")
	}
}
