package linting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"quill/internal/document"
)

// ErrUnknownRule is returned when configuration names a rule the group lacks.
var ErrUnknownRule = errors.New("unknown rule")

type rule struct {
	linter    Linter
	byDefault bool
	setting   Setting
}

func (r *rule) enabled() bool {
	switch r.setting {
	case SettingOn:
		return true
	case SettingOff:
		return false
	}
	return r.byDefault
}

// LintGroup is a named collection of linters with per-rule settings.
// Configure it before sharing; Lint and LintParallel are read-only.
type LintGroup struct {
	rules map[string]*rule
}

func NewLintGroup() *LintGroup {
	return &LintGroup{rules: make(map[string]*rule)}
}

// Add registers l under name, enabled by default. An existing rule with the
// same name is replaced.
func (g *LintGroup) Add(name string, l Linter) *LintGroup {
	g.rules[name] = &rule{linter: l, byDefault: true}
	return g
}

// AddDisabled registers l under name, disabled by default.
func (g *LintGroup) AddDisabled(name string, l Linter) *LintGroup {
	g.rules[name] = &rule{linter: l, byDefault: false}
	return g
}

// AddPattern registers a PatternLinter, enabled by default.
func (g *LintGroup) AddPattern(name string, pl PatternLinter) *LintGroup {
	return g.Add(name, FromPattern(pl))
}

// Merge copies every rule of other into g, replacing rules with equal names.
func (g *LintGroup) Merge(other *LintGroup) *LintGroup {
	for name, r := range other.rules {
		cp := *r
		g.rules[name] = &cp
	}
	return g
}

func (g *LintGroup) Len() int { return len(g.rules) }

func (g *LintGroup) Has(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Get returns the linter registered under name.
func (g *LintGroup) Get(name string) (Linter, bool) {
	r, ok := g.rules[name]
	if !ok {
		return nil, false
	}
	return r.linter, true
}

// Names returns all rule names in sorted order.
func (g *LintGroup) Names() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetRule overrides a single rule.
func (g *LintGroup) SetRule(name string, s Setting) error {
	r, ok := g.rules[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	r.setting = s
	return nil
}

// SetAllRulesTo overrides every rule.
func (g *LintGroup) SetAllRulesTo(s Setting) {
	for _, r := range g.rules {
		r.setting = s
	}
}

func (g *LintGroup) IsEnabled(name string) bool {
	r, ok := g.rules[name]
	return ok && r.enabled()
}

// Setting returns the override for name.
func (g *LintGroup) Setting(name string) (Setting, bool) {
	r, ok := g.rules[name]
	if !ok {
		return SettingDefault, false
	}
	return r.setting, true
}

// Config returns the effective enabled state of every rule.
func (g *LintGroup) Config() map[string]bool {
	out := make(map[string]bool, len(g.rules))
	for name, r := range g.rules {
		out[name] = r.enabled()
	}
	return out
}

// ApplyConfig sets explicit on/off overrides. Known rules are applied even if
// some names are unknown; the error lists the unknown ones.
func (g *LintGroup) ApplyConfig(cfg map[string]bool) error {
	var unknown []string
	for name, on := range cfg {
		r, ok := g.rules[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		r.setting = SettingOf(on)
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownRule, strings.Join(unknown, ", "))
	}
	return nil
}

// Descriptions maps rule names to their descriptions.
func (g *LintGroup) Descriptions() map[string]string {
	out := make(map[string]string, len(g.rules))
	for name, r := range g.rules {
		out[name] = r.linter.Description()
	}
	return out
}

// Description summarises the group, so a group can stand wherever a single
// Linter is expected.
func (g *LintGroup) Description() string {
	enabled := len(g.enabledNames())
	return fmt.Sprintf("group of %d rules (%d enabled)", len(g.rules), enabled)
}

var _ Linter = (*LintGroup)(nil)

func (g *LintGroup) enabledNames() []string {
	var names []string
	for _, name := range g.Names() {
		if g.rules[name].enabled() {
			names = append(names, name)
		}
	}
	return names
}

// Lint runs every enabled rule in name order and concatenates the results.
// Lints from different rules are not deduplicated.
func (g *LintGroup) Lint(doc *document.Document) []Lint {
	var out []Lint
	for _, name := range g.enabledNames() {
		out = append(out, g.runRule(name, doc)...)
	}
	return out
}

// LintParallel is Lint with rules spread over up to jobs goroutines. The
// result order matches Lint.
func (g *LintGroup) LintParallel(ctx context.Context, doc *document.Document, jobs int) ([]Lint, error) {
	names := g.enabledNames()
	results := make([][]Lint, len(names))

	eg, egCtx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for i, name := range names {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = g.runRule(name, doc)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []Lint
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (g *LintGroup) runRule(name string, doc *document.Document) []Lint {
	lints := g.rules[name].linter.Lint(doc)
	for i := range lints {
		if lints[i].Rule == "" {
			lints[i].Rule = name
		}
	}
	return lints
}
