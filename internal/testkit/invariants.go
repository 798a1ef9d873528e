package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/token"
)

// CheckTokenInvariants runs the structural checks every parser output must pass:
// 1) spans are ordered, contiguous and non-empty
// 2) the first token starts at 0 and the last ends at len(src)
// 3) payloads match kinds (Count only on Space/Newline, metadata only on Word)
func CheckTokenInvariants(toks []token.Token, src []rune) error {
	lenSrc, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len source overflow: %w", err)
	}
	if len(toks) == 0 {
		if lenSrc != 0 {
			return fmt.Errorf("no tokens for %d runes", lenSrc)
		}
		return nil
	}

	var at uint32
	for i, t := range toks {
		sp := t.Span
		if sp.Start != at {
			return fmt.Errorf("token %d (%s) starts at %d, want %d", i, t.Kind, sp.Start, at)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s) has empty span %v", i, t.Kind, sp)
		}
		if sp.End > lenSrc {
			return fmt.Errorf("token %d span %v beyond source (%d)", i, sp, lenSrc)
		}
		if t.Word != nil && t.Kind != token.Word {
			return fmt.Errorf("token %d (%s) carries word metadata", i, t.Kind)
		}
		if t.Count != 0 && t.Kind != token.Space && t.Kind != token.Newline {
			return fmt.Errorf("token %d (%s) carries a count", i, t.Kind)
		}
		at = sp.End
	}
	if at != lenSrc {
		return fmt.Errorf("tokens end at %d, source has %d runes", at, lenSrc)
	}
	return nil
}
