package phrases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"quill/internal/linting"
)

//go:embed rules.yaml
var rulesYAML []byte

// Entry is one row of the catalogue.
type Entry struct {
	Name        string   `yaml:"name"`
	Phrases     []string `yaml:"phrases"`
	Corrections []string `yaml:"corrections"`
	Message     string   `yaml:"message"`
	Description string   `yaml:"description"`
}

var errEmptyEntry = errors.New("entry needs a name, phrases and corrections")

// ParseEntries decodes a catalogue document.
func ParseEntries(data []byte) ([]Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode phrase rules: %w", err)
	}
	for i, e := range entries {
		if e.Name == "" || len(e.Phrases) == 0 || len(e.Corrections) == 0 {
			return nil, fmt.Errorf("phrase rule %d (%q): %w", i, e.Name, errEmptyEntry)
		}
	}
	return entries, nil
}

// Entries returns the built-in catalogue.
var Entries = sync.OnceValue(func() []Entry {
	entries, err := ParseEntries(rulesYAML)
	if err != nil {
		panic("phrases: " + err.Error())
	}
	return entries
})

// LintGroup returns a fresh group with every phrase rule switched on.
func LintGroup() *linting.LintGroup {
	g := linting.NewLintGroup()
	for _, e := range Entries() {
		g.AddPattern(e.Name, NewExactPhrases(e.Phrases, e.Corrections, e.Message, e.Description))
	}
	g.SetAllRulesTo(linting.SettingOn)
	return g
}
