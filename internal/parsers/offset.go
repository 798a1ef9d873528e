package parsers

import (
	"slices"

	"quill/internal/source"
	"quill/internal/token"
)

// offsetCursor maps spans produced by a sub-lexer over a slice of the buffer
// back to absolute buffer offsets.
type offsetCursor struct {
	base uint32
}

func (c offsetCursor) lex(p Parser, sub []rune) []token.Token {
	toks := p.Parse(sub)
	for i := range toks {
		toks[i].Span = toks[i].Span.ShiftRight(c.base)
	}
	return toks
}

// opaqueSet collects the regions of a buffer that must not be linted.
type opaqueSet struct {
	spans []source.Span
}

func (o *opaqueSet) add(start, end uint32) {
	if end <= start {
		return
	}
	o.spans = append(o.spans, source.Span{Start: start, End: end})
}

func (o *opaqueSet) addSpan(sp source.Span) { o.add(sp.Start, sp.End) }

// normalized returns the spans sorted with overlapping or touching spans merged.
func (o *opaqueSet) normalized() []source.Span {
	spans := slices.Clone(o.spans)
	slices.SortFunc(spans, func(a, b source.Span) int {
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}
		return int(a.End) - int(b.End)
	})
	out := spans[:0]
	for _, sp := range spans {
		if n := len(out); n > 0 && sp.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, sp.End)
			continue
		}
		out = append(out, sp)
	}
	return out
}

// tokens emits an Unlintable token per opaque region and lexes the prose
// between regions. The result partitions src.
func (o *opaqueSet) tokens(src []rune, decorate func([]token.Token, []rune)) []token.Token {
	limit := NewCursor(src).Limit
	var out []token.Token
	at := uint32(0)
	prose := func(end uint32) {
		if end <= at {
			return
		}
		toks := lexPlain(src, source.Span{Start: at, End: end})
		if decorate != nil {
			decorate(toks, src)
		}
		out = append(out, toks...)
	}
	for _, sp := range o.normalized() {
		sp.End = min(sp.End, limit)
		if sp.Start >= limit {
			break
		}
		prose(sp.Start)
		out = append(out, token.NewUnlintable(sp))
		at = sp.End
	}
	prose(limit)
	return out
}
