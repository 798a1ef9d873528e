package propernoun

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"quill/internal/dict"
	"quill/internal/linting"
	"quill/internal/parsers"
	"quill/internal/patterns"
	"quill/internal/titlecase"
	"quill/internal/token"
)

// Linter flags a set of names whose casing differs from the expected form.
// Names made of ordinary words are expected in title case. When a name carries
// a word such as "iPhone" or "RDS", the spellings listed for the rule win.
type Linter struct {
	pattern     patterns.Pattern
	names       []string
	casings     map[string][]string
	dict        dict.Dictionary
	description string
}

// New builds a linter for names, which may use "{a|b}" alternation.
func New(names []string, description string, d dict.Dictionary) *Linter {
	var expanded []string
	for _, n := range names {
		expanded = append(expanded, expand(n)...)
	}

	seqs := make([]*patterns.Sequence, 0, len(expanded))
	for _, n := range expanded {
		seqs = append(seqs, patterns.Phrase(n))
	}
	// Намеренно не по порядку каталога: в отличие от обычного Either здесь
	// побеждает самый длинный вариант, "MacBook Pro" раньше "MacBook".
	slices.SortStableFunc(seqs, func(a, b *patterns.Sequence) int { return b.Len() - a.Len() })
	alts := patterns.NewEither()
	for _, s := range seqs {
		alts.Or(s)
	}

	l := &Linter{names: expanded, dict: d, description: description}
	l.casings = casingsOf(expanded)
	if l.casings == nil {
		l.pattern = patterns.NewIsNotTitleCase(alts, d)
	} else {
		l.pattern = patterns.Func(func(toks []token.Token, src []rune) (int, bool) {
			n, ok := alts.Matches(toks, src)
			if !ok || n == 0 {
				return 0, false
			}
			sp, _ := token.SpanOf(toks[:n])
			if slices.Equal(l.expected(toks[:n], src), sp.Content(src)) {
				return 0, false
			}
			return n, true
		})
	}
	return l
}

func (l *Linter) Pattern() patterns.Pattern { return l.pattern }

func (l *Linter) MatchToLint(matched []token.Token, src []rune) (linting.Lint, bool) {
	span, ok := token.SpanOf(matched)
	if !ok {
		return linting.Lint{}, false
	}
	proper := l.expected(matched, src)
	if slices.Equal(proper, span.Content(src)) {
		return linting.Lint{}, false
	}
	return linting.Lint{
		Span:        span,
		Kind:        linting.KindCapitalization,
		Suggestions: []linting.Suggestion{linting.ReplaceWith(string(proper))},
		Message:     l.description,
		Priority:    linting.PriorityDefault,
	}, true
}

func (l *Linter) Description() string { return l.description }

func (l *Linter) Fingerprint() string {
	return fmt.Sprintf("names%q message%q", l.names, l.description)
}

// expected returns the corrected text of matched.
func (l *Linter) expected(matched []token.Token, src []rune) []rune {
	out := titlecase.Make(matched, src, l.dict)
	if l.casings == nil || len(matched) == 0 {
		return out
	}
	base := matched[0].Span.Start
	for _, t := range matched {
		if !t.IsWord() {
			continue
		}
		spellings := l.casings[strings.ToLower(t.Text(src))]
		if len(spellings) == 0 {
			continue
		}
		off := int(t.Span.Start - base)
		end := off + int(t.Span.Len())
		if end > len(out) {
			continue
		}
		current := t.Text(src)
		titled := string(out[off:end])
		pick := spellings[0]
		switch {
		case slices.Contains(spellings, current):
			pick = current
		case slices.Contains(spellings, titled):
			pick = titled
		}
		if r := []rune(pick); len(r) == end-off {
			copy(out[off:end], r)
		}
	}
	return out
}

// casingsOf collects the spellings of every word in names, keyed by lowercase.
// It returns nil when every word is plain lowercase or capitalised.
func casingsOf(names []string) map[string][]string {
	casings := make(map[string][]string)
	special := false
	for _, n := range names {
		src := []rune(n)
		for _, t := range (parsers.PlainEnglish{}).Parse(src) {
			if !t.IsWord() {
				continue
			}
			w := t.Text(src)
			key := strings.ToLower(w)
			if !slices.Contains(casings[key], w) {
				casings[key] = append(casings[key], w)
			}
			if w != key && w != capitalized(key) {
				special = true
			}
		}
	}
	if !special {
		return nil
	}
	return casings
}

func capitalized(lower string) string {
	r := []rune(lower)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// expand turns "{a|b} c" into "a c" and "b c". Braces do not nest.
func expand(s string) []string {
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return []string{s}
	}
	end := strings.IndexByte(s[open:], '}')
	if end < 0 {
		return []string{s}
	}
	end += open
	var out []string
	for _, alt := range strings.Split(s[open+1:end], "|") {
		for _, rest := range expand(s[end+1:]) {
			out = append(out, s[:open]+alt+rest)
		}
	}
	return out
}
