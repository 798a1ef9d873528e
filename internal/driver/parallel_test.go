package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"quill/internal/driver"
	"quill/internal/linting/curated"
)

const sloppy = "Lets go to south america, off course.\n"

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.md":                sloppy,
		"nested/b.txt":        "Nothing wrong here.\n",
		"nested/c.typ":        "= Title\nYes, off course.\n",
		"skip.go":             sloppy,
		"node_modules/x/d.md": sloppy,
		"nested/.git/HEAD.md": sloppy,
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func TestListFilesSkipsExcludedAndUnsupported(t *testing.T) {
	root := writeTree(t)
	files, err := driver.ListFiles([]string{root}, []string{".git", "node_modules"})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "nested", "b.txt"),
		filepath.Join(root, "nested", "c.typ"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestListFilesKeepsExplicitFile(t *testing.T) {
	root := writeTree(t)
	explicit := filepath.Join(root, "skip.go")
	files, err := driver.ListFiles([]string{explicit, explicit}, nil)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 1 || files[0] != explicit {
		t.Fatalf("files = %v", files)
	}
}

func TestLintDirMatchesSerialOrder(t *testing.T) {
	root := writeTree(t)
	var mu sync.Mutex
	var events []driver.Event
	opts := driver.Options{
		Group:   curated.LintGroup(nil),
		Jobs:    4,
		Exclude: []string{".git", "node_modules"},
		Sink: driver.SinkFunc(func(e driver.Event) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		}),
	}
	run, err := driver.LintDir(context.Background(), root, opts)
	if err != nil {
		t.Fatalf("LintDir: %v", err)
	}
	if len(run.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(run.Results))
	}
	if got := len(run.Results[0].Lints); got != 3 {
		t.Fatalf("a.md lints = %d, want 3", got)
	}
	if got := len(run.Results[1].Lints); got != 0 {
		t.Fatalf("b.txt lints = %d, want 0", got)
	}
	if got := len(run.Results[2].Lints); got != 1 {
		t.Fatalf("c.typ lints = %d, want 1", got)
	}
	if run.Failed() {
		t.Fatal("unexpected failure")
	}
	if run.LintCount() != 4 {
		t.Fatalf("LintCount = %d", run.LintCount())
	}

	done := 0
	for _, e := range events {
		if e.Status == driver.StatusDone {
			done++
		}
	}
	if done != 3 {
		t.Fatalf("done events = %d, want 3", done)
	}
	if len(run.Timing.Phases) != 3 {
		t.Fatalf("phases = %+v", run.Timing.Phases)
	}
	stages := map[string]int{}
	for _, s := range run.Timing.Stages {
		stages[s.Name] = s.Files
	}
	if stages["parse"] != 3 || stages["rules"] != 3 {
		t.Fatalf("stages = %+v", run.Timing.Stages)
	}
}

func TestLintPathsMissingFile(t *testing.T) {
	_, err := driver.LintPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope.md")}, driver.Options{Group: curated.LintGroup(nil)})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestLintPathsCancelled(t *testing.T) {
	root := writeTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.LintDir(ctx, root, driver.Options{Group: curated.LintGroup(nil)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	if _, err := driver.LintText(context.Background(), "x", nil, driver.Options{}); err == nil {
		t.Fatal("expected error for missing group")
	}
	_, err := driver.LintText(context.Background(), "x", nil, driver.Options{Group: curated.LintGroup(nil), Parser: "latex"})
	if err == nil {
		t.Fatal("expected error for unknown parser")
	}
}

func TestPhaseObserver(t *testing.T) {
	var names []string
	opts := driver.Options{
		Group: curated.LintGroup(nil),
		OnPhase: func(e driver.PhaseEvent) {
			if e.Status == driver.PhaseEnd {
				names = append(names, e.Name)
			}
		},
	}
	run, err := driver.LintText(context.Background(), "<stdin>", []byte(sloppy), opts)
	if err != nil {
		t.Fatalf("LintText: %v", err)
	}
	if len(names) != 2 || names[0] != "load" || names[1] != "lint" {
		t.Fatalf("phases = %v", names)
	}
	payload := run.TimingPayload("", "<stdin>")
	if payload.Kind != "lint" || payload.Files != 1 || len(payload.Stages) != 2 {
		t.Fatalf("payload = %+v", payload)
	}
	msg, data, err := driver.TimingSummary(payload)
	if err != nil || msg == "" || len(data) == 0 {
		t.Fatalf("TimingSummary: %q %s %v", msg, data, err)
	}
}
