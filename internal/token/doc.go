// Package token defines the prose token model shared by every parser adapter.
// Invariants:
//   - Token.Span is a rune range into the document buffer; Text is never copied
//     into the token, callers slice the buffer.
//   - The tokens of one document are contiguous and partition the buffer:
//     tok[i].Span.End == tok[i+1].Span.Start, first starts at 0, last ends at len.
//   - Word tokens carry metadata only after dictionary resolution (nil before).
//   - Regions a parser must not lint (code, math, URLs) are Unlintable.
package token
