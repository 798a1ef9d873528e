package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/linting"
	"quill/internal/linting/curated"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".quill.toml")
	writeFile(t, path, `
[lint]
parallel = 3
rules = { OfCourse = false, Americas = true }

[dictionary]
words = ["quill/N", "Typst/NO"]

[output]
format = "json"
max_lints = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lint.Parallel != 3 {
		t.Fatalf("parallel = %d", cfg.Lint.Parallel)
	}
	if on, ok := cfg.Lint.Rules["OfCourse"]; !ok || on {
		t.Fatalf("OfCourse rule not decoded: %v", cfg.Lint.Rules)
	}
	if cfg.Output.Format != "json" || cfg.Output.MaxLints != 10 {
		t.Fatalf("unexpected output section %+v", cfg.Output)
	}
	if cfg.Output.Color != "auto" || !cfg.Cache.Enabled {
		t.Fatalf("defaults lost: %+v %+v", cfg.Output, cfg.Cache)
	}
	if cfg.Dir() != dir {
		t.Fatalf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "a.toml")
	writeFile(t, tomlPath, "[lint]\nrulez = {}\n")
	if _, err := Load(tomlPath); !errors.Is(err, ErrUnknownKeys) {
		t.Fatalf("expected ErrUnknownKeys, got %v", err)
	}

	yamlPath := filepath.Join(dir, "a.yaml")
	writeFile(t, yamlPath, "lint:\n  rulez: {}\n")
	if _, err := Load(yamlPath); err == nil {
		t.Fatal("expected error for unknown YAML key")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	ini := filepath.Join(dir, "a.ini")
	writeFile(t, ini, "x=1")
	if _, err := Load(ini); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".quill.yaml")
	writeFile(t, path, "lint:\n  all: false\n  rules:\n    OfCourse: true\ncache:\n  enabled: false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Lint.All == nil || *cfg.Lint.All {
		t.Fatalf("all not decoded: %v", cfg.Lint.All)
	}
	if cfg.Cache.Enabled {
		t.Fatal("cache should be disabled")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".quill.toml"), "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if got != filepath.Join(root, ".quill.toml") {
		t.Fatalf("discover = %q", got)
	}

	file := filepath.Join(nested, "doc.md")
	writeFile(t, file, "text")
	if got, err := Discover(file); err != nil || !strings.HasSuffix(got, ".quill.toml") {
		t.Fatalf("discover from file = %q, %v", got, err)
	}
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "" && !strings.HasSuffix(cfg.Path, ".quill.toml") {
		t.Fatalf("unexpected path %q", cfg.Path)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := Default()
		cfg.Lint.Rules["OfCourse"] = false
		cfg.Output.MaxLints = 7
		if err := Write(path, cfg); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if back.Output.MaxLints != 7 || back.Lint.Rules["OfCourse"] {
			t.Fatalf("%s: round trip lost data: %+v", name, back)
		}
	}
}

func TestApplyRules(t *testing.T) {
	off := false
	cfg := Default()
	cfg.Lint.All = &off
	cfg.Lint.Rules = map[string]bool{"OfCourse": true, "NoSuchRule": true}

	g := curated.LintGroup(nil)
	err := cfg.ApplyRules(g)
	if !errors.Is(err, linting.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	if !g.IsEnabled("OfCourse") || g.IsEnabled("Americas") {
		t.Fatalf("unexpected rule state: %v", g.Config())
	}
}

func TestBuildDictionary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.txt"), "# team words\nfrobnicate/V\n")
	cfg := Default()
	cfg.Path = filepath.Join(dir, ".quill.toml")
	cfg.Dictionary.Words = []string{"quill/N"}
	cfg.Dictionary.Files = []string{"words.txt"}

	d, err := cfg.BuildDictionary()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !d.Contains("quill") || !d.Metadata("frobnicate").IsVerb() {
		t.Fatal("user words missing")
	}
	if !d.Contains("the") {
		t.Fatal("curated words missing")
	}

	cfg.Dictionary.Files = []string{"missing.txt"}
	if _, err := cfg.BuildDictionary(); err == nil {
		t.Fatal("expected error for missing word list")
	}
}

func TestCacheSaltTracksWordLists(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	writeFile(t, list, "frobnicate/V\n")
	cfg := Default()
	cfg.Path = filepath.Join(dir, ".quill.toml")
	if cfg.CacheSalt() != "" {
		t.Fatal("default config must not salt the cache")
	}

	cfg.Dictionary.Words = []string{"b", "a"}
	cfg.Dictionary.Files = []string{"words.txt"}
	first := cfg.CacheSalt()

	cfg.Dictionary.Words = []string{"a", "b"}
	if cfg.CacheSalt() != first {
		t.Fatal("word order must not change the salt")
	}

	writeFile(t, list, "frobnicate/N\n")
	if cfg.CacheSalt() == first {
		t.Fatal("editing a word list must change the salt")
	}
}
