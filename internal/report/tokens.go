package report

import (
	"encoding/json"
	"fmt"
	"io"

	"quill/internal/document"
	"quill/internal/source"
	"quill/internal/token"
)

// TokenOutput is one token in JSON output.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text"`
	Span  source.Span `json:"span"`
	Word  string      `json:"word,omitempty"`
	Punct string      `json:"punct,omitempty"`
	Count int         `json:"count,omitempty"`
}

func spanOf(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

// TokensPretty prints one token per line with its position and payload.
func TokensPretty(w io.Writer, doc *document.Document, f *source.File) error {
	for i, tok := range doc.Tokens() {
		startPos, endPos := f.Resolve(tok.Span)
		fmt.Fprintf(w, "%4d: %-15s %q at %d:%d-%d:%d",
			i+1, tok.Kind.String(), doc.TokenText(tok),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		switch tok.Kind {
		case token.Word:
			if meta := tok.Meta(); !meta.IsEmpty() {
				fmt.Fprintf(w, " [%s]", meta)
			}
		case token.Punctuation:
			fmt.Fprintf(w, " [%s]", tok.Punct)
		case token.Space, token.Newline:
			fmt.Fprintf(w, " [x%d]", tok.Count)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// TokensJSON writes the document's tokens as an indented JSON array.
func TokensJSON(w io.Writer, doc *document.Document) error {
	toks := doc.Tokens()
	output := make([]TokenOutput, 0, len(toks))
	for _, tok := range toks {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: doc.TokenText(tok),
			Span: tok.Span,
		}
		switch tok.Kind {
		case token.Word:
			if meta := tok.Meta(); !meta.IsEmpty() {
				out.Word = meta.String()
			}
		case token.Punctuation:
			out.Punct = tok.Punct.String()
		case token.Space, token.Newline:
			out.Count = tok.Count
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
