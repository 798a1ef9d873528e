package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"quill/internal/morph"
)

// ErrBadFlag reports an unknown flag character in a word list entry.
var ErrBadFlag = errors.New("unknown word flag")

// LoadWordList parses a word list (see package doc) into a dictionary.
func LoadWordList(r io.Reader) (*MapDictionary, error) {
	d := &MapDictionary{words: make(map[string]morph.WordMetadata)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		word, flags, _ := strings.Cut(text, "/")
		word = strings.TrimSpace(word)
		if word == "" {
			return nil, fmt.Errorf("line %d: empty word", line)
		}
		meta, err := ParseFlags(strings.TrimSpace(flags))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d.put(word, meta)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return d, nil
}

// LoadWordListFile reads a word list from path.
func LoadWordListFile(path string) (*MapDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	d, err := LoadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// FromWords builds a dictionary of plain entries ("word" or "word/FLAGS").
func FromWords(words []string) (*MapDictionary, error) {
	return LoadWordList(strings.NewReader(strings.Join(words, "\n")))
}

// ParseFlags converts a flag string into metadata.
func ParseFlags(flags string) (morph.WordMetadata, error) {
	var m morph.WordMetadata
	noun := func() *morph.NounData {
		if m.Noun == nil {
			m.Noun = &morph.NounData{}
		}
		return m.Noun
	}
	verb := func() *morph.VerbData {
		if m.Verb == nil {
			m.Verb = &morph.VerbData{}
		}
		return m.Verb
	}
	for _, f := range flags {
		switch f {
		case 'N':
			noun()
		case 'O':
			noun().IsProper = morph.Yes
		case 'S':
			noun().IsPlural = morph.Yes
		case 'G':
			noun().IsPossessive = morph.Yes
		case 'V':
			verb()
		case 'L':
			verb().IsLinking = morph.Yes
		case 'D':
			verb().Tense = morph.TensePast
		case 'J':
			m.Adjective = &morph.AdjectiveData{}
		case 'R':
			m.Adverb = &morph.AdverbData{}
		case 'U':
			m.Pronoun = &morph.PronounData{}
		case 'C':
			m.Conjunction = &morph.ConjunctionData{}
		case 'A':
			m.Article = morph.Yes
		case 'E':
			m.Preposition = morph.Yes
		default:
			return morph.WordMetadata{}, fmt.Errorf("%w %q", ErrBadFlag, f)
		}
	}
	return m, nil
}
