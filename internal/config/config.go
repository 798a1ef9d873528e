// Package config loads the project configuration file (.quill.toml, or
// .quill.yaml as an alternate) and turns it into rule settings and a
// dictionary stack.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the names Discover looks for, in order of preference.
var FileNames = []string{".quill.toml", "quill.toml", ".quill.yaml", ".quill.yml"}

var (
	// ErrNotFound indicates that no configuration file exists up the tree.
	ErrNotFound = errors.New("config file not found")
	// ErrUnknownKeys indicates keys the schema does not define.
	ErrUnknownKeys = errors.New("unknown configuration keys")
	// ErrUnsupportedFormat indicates a file extension that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config is the decoded project configuration.
type Config struct {
	Lint       Lint       `toml:"lint" yaml:"lint"`
	Dictionary Dictionary `toml:"dictionary" yaml:"dictionary"`
	Output     Output     `toml:"output" yaml:"output"`
	Cache      Cache      `toml:"cache" yaml:"cache"`

	// Path is the file the config was loaded from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Lint selects rules.
type Lint struct {
	// All, when set, switches every rule on or off before Rules apply.
	All      *bool           `toml:"all,omitempty" yaml:"all,omitempty"`
	Rules    map[string]bool `toml:"rules,omitempty" yaml:"rules,omitempty"`
	Parallel int             `toml:"parallel" yaml:"parallel"`
	Exclude  []string        `toml:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// Dictionary adds user words on top of the curated dictionary.
type Dictionary struct {
	Words []string `toml:"words,omitempty" yaml:"words,omitempty"`
	Files []string `toml:"files,omitempty" yaml:"files,omitempty"`
}

// Output controls rendering.
type Output struct {
	Format          string `toml:"format" yaml:"format"`
	Color           string `toml:"color" yaml:"color"`
	MaxLints        int    `toml:"max_lints" yaml:"max_lints"`
	ShowSuggestions bool   `toml:"show_suggestions" yaml:"show_suggestions"`
}

// Cache configures lint result caching.
type Cache struct {
	Enabled       bool   `toml:"enabled" yaml:"enabled"`
	Dir           string `toml:"dir,omitempty" yaml:"dir,omitempty"`
	MemoryEntries int    `toml:"memory_entries" yaml:"memory_entries"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Lint: Lint{
			Rules:   map[string]bool{},
			Exclude: []string{".git", "node_modules", "vendor"},
		},
		Output: Output{
			Format:          "pretty",
			Color:           "auto",
			ShowSuggestions: true,
		},
		Cache: Cache{
			Enabled:       true,
			MemoryEntries: 512,
		},
	}
}

// Load decodes the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Lint.Rules == nil {
		cfg.Lint.Rules = map[string]bool{}
	}
	cfg.Path = path
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Discover walks up from startDir and returns the first config file found.
func Discover(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNotFound
}

// LoadOrDefault discovers a config from startDir, falling back to defaults.
func LoadOrDefault(startDir string) (*Config, error) {
	path, err := Discover(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Write encodes cfg to path; the extension picks TOML or YAML.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { // #nosec G306 -- config is not secret
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Dir is the directory relative paths in the config resolve against.
func (c *Config) Dir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}
