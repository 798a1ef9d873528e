package propernoun

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"quill/internal/dict"
	"quill/internal/linting"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule is one catalogue entry.
type Rule struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Names       []string `yaml:"names"`
}

var errBadRule = errors.New("invalid proper noun rule")

// ParseRules decodes and validates a catalogue document.
func ParseRules(data []byte) ([]Rule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var rules []Rule
	if err := dec.Decode(&rules); err != nil {
		return nil, fmt.Errorf("decode proper noun rules: %w", err)
	}
	for _, r := range rules {
		if r.Name == "" || len(r.Names) == 0 {
			return nil, fmt.Errorf("%w: %q has no names", errBadRule, r.Name)
		}
		for _, n := range r.Names {
			if strings.Count(n, "{") != strings.Count(n, "}") {
				return nil, fmt.Errorf("%w: %q: unbalanced braces in %q", errBadRule, r.Name, n)
			}
		}
	}
	return rules, nil
}

// Rules returns the built-in catalogue.
var Rules = sync.OnceValue(func() []Rule {
	rules, err := ParseRules(rulesYAML)
	if err != nil {
		panic("propernoun: " + err.Error())
	}
	return rules
})

// LintGroup returns a fresh group with every proper noun rule switched on.
func LintGroup(d dict.Dictionary) *linting.LintGroup {
	g := linting.NewLintGroup()
	for _, r := range Rules() {
		g.AddPattern(r.Name, New(r.Names, r.Description, d))
	}
	g.SetAllRulesTo(linting.SettingOn)
	return g
}
