package dict

import (
	"slices"
	"strings"

	"quill/internal/morph"
)

// Dictionary answers metadata and membership queries for words.
// Metadata is total: unknown words yield an empty record.
type Dictionary interface {
	Metadata(word string) morph.WordMetadata
	Contains(word string) bool
}

// MapDictionary is a Dictionary backed by a map keyed by lowercase word.
type MapDictionary struct {
	words map[string]morph.WordMetadata
}

var _ Dictionary = (*MapDictionary)(nil)

// NewMap builds a dictionary from entries. Keys are lowercased; entries that
// collide after lowercasing are merged.
func NewMap(entries map[string]morph.WordMetadata) *MapDictionary {
	d := &MapDictionary{words: make(map[string]morph.WordMetadata, len(entries))}
	for w, m := range entries {
		d.put(w, m)
	}
	return d
}

func (d *MapDictionary) put(word string, m morph.WordMetadata) {
	key := strings.ToLower(word)
	if prev, ok := d.words[key]; ok {
		m = m.Or(prev)
	}
	d.words[key] = m.Clone()
}

func (d *MapDictionary) Metadata(word string) morph.WordMetadata {
	m, ok := d.words[strings.ToLower(word)]
	if !ok {
		return morph.WordMetadata{}
	}
	return m.Clone()
}

func (d *MapDictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (d *MapDictionary) Len() int { return len(d.words) }

// Words returns every word in sorted order.
func (d *MapDictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
