package linting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/dict"
	"quill/internal/document"
	"quill/internal/parsers"
	"quill/internal/patterns"
	"quill/internal/source"
	"quill/internal/token"
)

type phraseRule struct {
	pattern patterns.Pattern
	with    string
	veto    func(text string) bool
}

func (r phraseRule) Pattern() patterns.Pattern { return r.pattern }

func (r phraseRule) MatchToLint(matched []token.Token, src []rune) (Lint, bool) {
	span, ok := token.SpanOf(matched)
	if !ok {
		return Lint{}, false
	}
	text := span.Content(src)
	if r.veto != nil && r.veto(string(text)) {
		return Lint{}, false
	}
	return Lint{
		Span:        span,
		Kind:        KindWordChoice,
		Suggestions: []Suggestion{ReplaceWithMatchCase(r.with, text)},
		Message:     "Did you mean “" + r.with + "”?",
		Priority:    PriorityDefault,
	}, true
}

func (r phraseRule) Description() string { return "replaces a phrase" }

func doc(text string) *document.Document {
	return document.New(text, parsers.PlainEnglish{}, dict.Curated())
}

func TestRunPatternReportsMatches(t *testing.T) {
	rule := phraseRule{pattern: patterns.Phrase("off course"), with: "of course"}
	d := doc("Off course it works, off course.")

	lints := RunPattern(rule, d.Tokens(), d.Source())
	require.Len(t, lints, 2)
	assert.Equal(t, "Off course", d.Text(lints[0].Span))
	assert.Equal(t, "Of course", lints[0].Suggestions[0].Text)
	assert.Equal(t, "of course", lints[1].Suggestions[0].Text)
}

func TestRunPatternNoOverlap(t *testing.T) {
	rule := phraseRule{pattern: patterns.Phrase("a a"), with: "a"}
	d := doc("a a a a a")

	lints := RunPattern(rule, d.Tokens(), d.Source())
	require.Len(t, lints, 2)
	for i := 1; i < len(lints); i++ {
		assert.LessOrEqual(t, lints[i-1].Span.End, lints[i].Span.Start)
	}
}

func TestRunPatternVetoAdvancesPastMatch(t *testing.T) {
	rule := phraseRule{
		pattern: patterns.Phrase("a a"),
		with:    "a",
		veto:    func(text string) bool { return text == "A a" },
	}
	d := doc("A a a a")

	// вето на первом совпадении не даёт пересечься со вторым
	lints := RunPattern(rule, d.Tokens(), d.Source())
	require.Len(t, lints, 1)
	assert.Equal(t, uint32(4), lints[0].Span.Start)
}

func TestRunPatternSkipsUnlintable(t *testing.T) {
	src := []rune("ab cd")
	toks := []token.Token{
		token.NewWord(source.NewSpan(0, 2), nil),
		token.NewUnlintable(source.NewSpan(2, 3)),
		token.NewWord(source.NewSpan(3, 5), nil),
	}
	any2 := patterns.Func(func(toks []token.Token, _ []rune) (int, bool) {
		if len(toks) < 2 {
			return 0, false
		}
		return 2, true
	})
	rule := phraseRule{pattern: any2, with: "x"}

	assert.Empty(t, RunPattern(rule, toks, src))
}

func TestRunPatternZeroLengthMatch(t *testing.T) {
	empty := patterns.Func(func([]token.Token, []rune) (int, bool) { return 0, true })
	rule := phraseRule{pattern: empty, with: "x"}
	d := doc("one two")

	assert.Empty(t, RunPattern(rule, d.Tokens(), d.Source()))
}

func newTestGroup() *LintGroup {
	g := NewLintGroup()
	g.AddPattern("OffCourse", phraseRule{pattern: patterns.Phrase("off course"), with: "of course"})
	g.AddPattern("ToBeHonest", phraseRule{pattern: patterns.Phrase("to be honest"), with: "honestly"})
	g.AddDisabled("Everything", Func{
		Desc: "flags every word",
		Fn: func(d *document.Document) []Lint {
			var out []Lint
			for _, t := range d.WordLikes() {
				out = append(out, Lint{Span: t.Span, Rule: "Everything"})
			}
			return out
		},
	})
	return g
}

func TestLintGroupSettings(t *testing.T) {
	g := newTestGroup()
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"Everything", "OffCourse", "ToBeHonest"}, g.Names())
	assert.False(t, g.IsEnabled("Everything"))
	assert.True(t, g.IsEnabled("OffCourse"))

	require.NoError(t, g.SetRule("Everything", SettingOn))
	assert.True(t, g.IsEnabled("Everything"))

	err := g.SetRule("Missing", SettingOn)
	assert.ErrorIs(t, err, ErrUnknownRule)

	g.SetAllRulesTo(SettingOff)
	assert.Equal(t, map[string]bool{"Everything": false, "OffCourse": false, "ToBeHonest": false}, g.Config())

	g.SetAllRulesTo(SettingDefault)
	assert.Equal(t, map[string]bool{"Everything": false, "OffCourse": true, "ToBeHonest": true}, g.Config())
}

func TestLintGroupApplyConfig(t *testing.T) {
	g := newTestGroup()
	err := g.ApplyConfig(map[string]bool{"OffCourse": false, "Zeta": true, "Alpha": false})
	require.ErrorIs(t, err, ErrUnknownRule)
	assert.Contains(t, err.Error(), "Alpha, Zeta")
	assert.False(t, g.IsEnabled("OffCourse"), "known rules apply despite unknown ones")

	s, ok := g.Setting("OffCourse")
	assert.True(t, ok)
	assert.Equal(t, SettingOff, s)
}

func TestLintGroupLintSetsRuleNames(t *testing.T) {
	g := newTestGroup()
	lints := g.Lint(doc("Off course, to be honest, it works."))
	require.Len(t, lints, 2)
	assert.Equal(t, "OffCourse", lints[0].Rule)
	assert.Equal(t, "ToBeHonest", lints[1].Rule)
}

func TestLintGroupParallelMatchesSerial(t *testing.T) {
	g := newTestGroup()
	require.NoError(t, g.SetRule("Everything", SettingOn))
	d := doc("Off course, to be honest, off course it works.")

	serial := g.Lint(d)
	for _, jobs := range []int{0, 1, 4} {
		parallel, err := g.LintParallel(context.Background(), d, jobs)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, "jobs=%d", jobs)
	}
}

func TestLintGroupParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestGroup().LintParallel(ctx, doc("off course"), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLintGroupMergeCopiesRules(t *testing.T) {
	a := NewLintGroup()
	b := newTestGroup()
	require.NoError(t, b.SetRule("OffCourse", SettingOff))

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.False(t, a.IsEnabled("OffCourse"))

	require.NoError(t, a.SetRule("OffCourse", SettingOn))
	assert.False(t, b.IsEnabled("OffCourse"), "merge must not alias settings")

	desc := a.Descriptions()
	assert.Equal(t, "flags every word", desc["Everything"])
}

func TestLintGroupIsALinter(t *testing.T) {
	inner := newTestGroup()
	assert.Equal(t, "group of 3 rules (2 enabled)", inner.Description())

	var l Linter = inner
	outer := NewLintGroup().Add("Inner", l)
	lints := outer.Lint(doc("Off course, to be honest, it works."))
	require.Len(t, lints, 2)
	assert.Equal(t, "OffCourse", lints[0].Rule, "inner rule names survive nesting")
	assert.Equal(t, "group of 3 rules (2 enabled)", outer.Descriptions()["Inner"])
}
