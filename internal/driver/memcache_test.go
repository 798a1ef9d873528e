package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quill/internal/driver"
	"quill/internal/linting"
	"quill/internal/linting/curated"
	"quill/internal/linting/phrases"
	"quill/internal/parsers"
)

func TestCacheHitsOnSecondRun(t *testing.T) {
	disk, err := driver.OpenDiskCache(t.TempDir(), "quill")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	cache, err := driver.NewCache(8, disk)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	opts := driver.Options{Group: curated.LintGroup(nil), Cache: cache}

	first, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Results[0].Cached {
		t.Fatal("first run should miss")
	}
	second, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !second.Results[0].Cached {
		t.Fatal("second run should hit")
	}
	if len(second.Results[0].Lints) != len(first.Results[0].Lints) {
		t.Fatalf("cached lints differ: %d vs %d", len(second.Results[0].Lints), len(first.Results[0].Lints))
	}
	if stats := cache.Stats(); stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestDiskCacheSurvivesNewMemoryLayer(t *testing.T) {
	dir := t.TempDir()
	disk, err := driver.OpenDiskCache(dir, "quill")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	warm, _ := driver.NewCache(8, disk)
	opts := driver.Options{Group: curated.LintGroup(nil), Cache: warm}
	first, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatalf("warm: %v", err)
	}

	cold, _ := driver.NewCache(8, disk)
	opts.Cache = cold
	run, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatalf("cold: %v", err)
	}
	res := run.Results[0]
	if !res.Cached {
		t.Fatal("expected disk hit")
	}
	want := first.Results[0].Lints
	for i := range want {
		if res.Lints[i].Span != want[i].Span || res.Lints[i].Message != want[i].Message {
			t.Fatalf("lint %d = %+v, want %+v", i, res.Lints[i], want[i])
		}
		if len(res.Lints[i].Suggestions) != len(want[i].Suggestions) {
			t.Fatalf("lint %d suggestions differ", i)
		}
	}

	if err := cold.Purge(); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if _, err := os.Stat(filepath.Join(disk.Dir(), "lints")); !os.IsNotExist(err) {
		t.Fatalf("lints dir should be gone, stat err = %v", err)
	}
}

func TestCacheKeyDependsOnRulesAndParser(t *testing.T) {
	cache, _ := driver.NewCache(8, nil)
	g := curated.LintGroup(nil)
	opts := driver.Options{Group: g, Cache: cache}
	if _, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts); err != nil {
		t.Fatal(err)
	}

	if err := g.SetRule("OfCourse", linting.SettingOff); err != nil {
		t.Fatal(err)
	}
	run, err := driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatal(err)
	}
	if run.Results[0].Cached {
		t.Fatal("changing rules must invalidate the cache key")
	}

	opts.Parser = parsers.NamePlain
	run, err = driver.LintText(context.Background(), "a.md", []byte(sloppy), opts)
	if err != nil {
		t.Fatal(err)
	}
	if run.Results[0].Cached {
		t.Fatal("changing parser must invalidate the cache key")
	}
}

func bareInMindGroup(correction string) *linting.LintGroup {
	return linting.NewLintGroup().AddPattern("BareInMind",
		phrases.NewExactPhrases([]string{"bare in mind"}, []string{correction}, "Did you mean this?", "Bare in mind"))
}

func TestCacheKeyTracksRuleDefinitions(t *testing.T) {
	dir := t.TempDir()
	disk, err := driver.OpenDiskCache(dir, "quill")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	text := []byte("Please bare in mind the rules.\n")

	first, _ := driver.NewCache(8, disk)
	opts := driver.Options{Group: bareInMindGroup("bear in mind"), Cache: first}
	if _, err := driver.LintText(context.Background(), "a.txt", text, opts); err != nil {
		t.Fatal(err)
	}

	// same rule name, new correction, fresh memory layer over the same disk
	second, _ := driver.NewCache(8, disk)
	opts = driver.Options{Group: bareInMindGroup("keep in mind"), Cache: second}
	run, err := driver.LintText(context.Background(), "a.txt", text, opts)
	if err != nil {
		t.Fatal(err)
	}
	res := run.Results[0]
	if res.Cached {
		t.Fatal("a changed rule definition must miss the cache")
	}
	if len(res.Lints) != 1 || len(res.Lints[0].Suggestions) != 1 {
		t.Fatalf("lints = %+v", res.Lints)
	}
	if got := res.Lints[0].Suggestions[0].Text; got != "keep in mind" {
		t.Fatalf("suggestion = %q, want %q", got, "keep in mind")
	}
}

func TestDigestAndFingerprint(t *testing.T) {
	a := driver.RulesFingerprint(curated.LintGroup(nil))
	b := driver.RulesFingerprint(curated.LintGroup(nil))
	if a != b {
		t.Fatal("fingerprint must be deterministic")
	}
	g := curated.LintGroup(nil)
	g.SetAllRulesTo(linting.SettingOff)
	if driver.RulesFingerprint(g) == a {
		t.Fatal("fingerprint must track enabled rules")
	}
	if driver.RulesFingerprint(bareInMindGroup("a")) == driver.RulesFingerprint(bareInMindGroup("b")) {
		t.Fatal("fingerprint must track corrections")
	}
	var d driver.Digest
	if !d.IsZero() || len(d.String()) != 64 {
		t.Fatalf("zero digest: %q", d.String())
	}
}

func TestTokenizeText(t *testing.T) {
	res, err := driver.TokenizeText("x.md", []byte("# Hi\n\nSome *text*."), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Parser != parsers.NameMarkdown {
		t.Fatalf("parser = %q", res.Parser)
	}
	if len(res.Document.Tokens()) == 0 {
		t.Fatal("expected tokens")
	}
	if _, err := driver.TokenizeText("x.md", nil, "latex", nil); err == nil {
		t.Fatal("expected unknown parser error")
	}
}

func TestCacheEntriesAreIsolated(t *testing.T) {
	cache, err := driver.NewCache(8, nil)
	if err != nil {
		t.Fatal(err)
	}
	var key driver.Digest
	key[0] = 1
	stored := []linting.Lint{{Rule: "BareInMind", Suggestions: []linting.Suggestion{linting.ReplaceWith("bear in mind")}}}
	if err := cache.Put(key, "a.txt", stored); err != nil {
		t.Fatal(err)
	}
	stored[0].Suggestions[0] = linting.ReplaceWith("caller edit")

	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	got[0].Suggestions[0] = linting.ReplaceWith("reader edit")

	again, _, _ := cache.Get(key)
	if s := again[0].Suggestions[0].Text; s != "bear in mind" {
		t.Fatalf("cached suggestion = %q", s)
	}
}
