// Package parsers turns a rune buffer into the token stream of a document.
//
// Every Parser must return tokens whose spans partition the whole buffer.
// Format adapters (Markdown, Typst) find the regions that must not be linted,
// emit them as Unlintable, and run PlainEnglish over the prose between them,
// shifting the sub-lexer's spans back to absolute buffer offsets.
package parsers
