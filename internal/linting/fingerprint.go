package linting

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Fingerprinter is implemented by linters whose output is fully determined by
// a definition that can be written down as a string: phrases, corrections,
// messages. Result caches key on it.
type Fingerprinter interface {
	Fingerprint() string
}

// FingerprintOf returns l's fingerprint, or its description when l does not
// implement Fingerprinter.
func FingerprintOf(l Linter) string {
	if f, ok := l.(Fingerprinter); ok {
		return f.Fingerprint()
	}
	return l.Description()
}

func (l patternLinter) Fingerprint() string {
	if f, ok := l.PatternLinter.(Fingerprinter); ok {
		return f.Fingerprint()
	}
	return l.PatternLinter.Description()
}

// Fingerprint hashes the names and definitions of the enabled rules.
func (g *LintGroup) Fingerprint() string {
	h := sha256.New()
	for _, name := range g.enabledNames() {
		_, _ = io.WriteString(h, name+"\x00"+FingerprintOf(g.rules[name].linter)+"\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
