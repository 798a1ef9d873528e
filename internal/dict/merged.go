package dict

import "quill/internal/morph"

// MergedDictionary layers several dictionaries. Earlier layers take
// precedence for metadata fields they set.
type MergedDictionary struct {
	layers []Dictionary
}

var _ Dictionary = (*MergedDictionary)(nil)

// Merged returns a dictionary consulting layers in order. Nil layers are skipped.
func Merged(layers ...Dictionary) *MergedDictionary {
	m := &MergedDictionary{layers: make([]Dictionary, 0, len(layers))}
	for _, l := range layers {
		if l != nil {
			m.layers = append(m.layers, l)
		}
	}
	return m
}

func (m *MergedDictionary) Metadata(word string) morph.WordMetadata {
	var out morph.WordMetadata
	for _, l := range m.layers {
		out = out.Or(l.Metadata(word))
	}
	return out
}

func (m *MergedDictionary) Contains(word string) bool {
	for _, l := range m.layers {
		if l.Contains(word) {
			return true
		}
	}
	return false
}
