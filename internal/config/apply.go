package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"quill/internal/dict"
	"quill/internal/linting"
)

// ApplyRules pushes the [lint] section into g. Unknown rule names are
// reported after every known one has been applied.
func (c *Config) ApplyRules(g *linting.LintGroup) error {
	if c.Lint.All != nil {
		g.SetAllRulesTo(linting.SettingOf(*c.Lint.All))
	}
	if err := g.ApplyConfig(c.Lint.Rules); err != nil {
		return fmt.Errorf("[lint.rules]: %w", err)
	}
	return nil
}

// BuildDictionary layers the user word lists over the curated dictionary.
// User entries win on conflicting flags.
func (c *Config) BuildDictionary() (dict.Dictionary, error) {
	var layers []dict.Dictionary
	if len(c.Dictionary.Words) > 0 {
		words, err := dict.FromWords(c.Dictionary.Words)
		if err != nil {
			return nil, fmt.Errorf("[dictionary.words]: %w", err)
		}
		layers = append(layers, words)
	}
	for _, f := range c.Dictionary.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(c.Dir(), f)
		}
		d, err := dict.LoadWordListFile(f)
		if err != nil {
			return nil, fmt.Errorf("[dictionary.files]: %w", err)
		}
		layers = append(layers, d)
	}
	if len(layers) == 0 {
		return dict.Curated(), nil
	}
	layers = append(layers, dict.Curated())
	return dict.Merged(layers...), nil
}

// CacheSalt fingerprints the dictionary layers so cached lint results are
// not reused after the user word lists change.
func (c *Config) CacheSalt() string {
	if len(c.Dictionary.Words) == 0 && len(c.Dictionary.Files) == 0 {
		return ""
	}
	h := sha256.New()
	words := slices.Clone(c.Dictionary.Words)
	slices.Sort(words)
	for _, w := range words {
		_, _ = io.WriteString(h, "w:"+w+"\n")
	}
	for _, f := range c.Dictionary.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(c.Dir(), f)
		}
		_, _ = io.WriteString(h, "f:"+f+"\n")
		// содержимое, а не mtime: кэш переживает checkout
		if data, err := os.ReadFile(f); err == nil { // #nosec G304 -- configured word list
			_, _ = h.Write(data)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
