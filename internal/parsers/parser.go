package parsers

import (
	"path/filepath"
	"strings"

	"quill/internal/token"
)

// Parser tokenizes a rune buffer. Implementations are stateless and safe for
// concurrent use.
type Parser interface {
	Parse(src []rune) []token.Token
}

// Func adapts a plain function into a Parser.
type Func func(src []rune) []token.Token

func (f Func) Parse(src []rune) []token.Token { return f(src) }

// Name identifies a built-in parser.
type Name string

const (
	NamePlain    Name = "plain"
	NameMarkdown Name = "markdown"
	NameTypst    Name = "typst"
)

// Names lists the built-in parsers.
func Names() []Name { return []Name{NamePlain, NameMarkdown, NameTypst} }

// ByName returns the built-in parser with the given name.
func ByName(name Name) (Parser, bool) {
	switch Name(strings.ToLower(string(name))) {
	case NamePlain, "text", "txt":
		return PlainEnglish{}, true
	case NameMarkdown, "md":
		return Markdown{}, true
	case NameTypst, "typ":
		return Typst{}, true
	}
	return nil, false
}

// NameForPath picks a parser name by file extension; unknown extensions are
// plain text.
func NameForPath(path string) Name {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx":
		return NameMarkdown
	case ".typ":
		return NameTypst
	}
	return NamePlain
}

// ForPath returns the parser NameForPath selects.
func ForPath(path string) Parser {
	p, _ := ByName(NameForPath(path))
	return p
}

// Supported reports whether path has an extension quill lints when walking
// directories.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx", ".typ", ".txt", ".text":
		return true
	}
	return false
}
