package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"

	"quill/internal/linting"
	"quill/internal/version"
)

// Digest identifies a cached lint result.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool { return d == Digest{} }

// combineDigest: H(schema || version || parser || salt || rules || content).
// Results never cross binary versions.
func combineDigest(content [32]byte, parser, salt, rules string) Digest {
	h := sha256.New()
	_, _ = io.WriteString(h, strconv.Itoa(int(diskCacheSchemaVersion)))
	_, _ = io.WriteString(h, "\x00"+version.Version)
	for _, part := range []string{parser, salt, rules} {
		_, _ = io.WriteString(h, "\x00"+part)
	}
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// RulesFingerprint condenses the enabled rules of g, with their definitions,
// into a stable string.
func RulesFingerprint(g *linting.LintGroup) string {
	return g.Fingerprint()
}
