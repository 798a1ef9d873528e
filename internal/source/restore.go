package source

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUnmappable is returned by Restore when the normalised text cannot be
// mapped back onto the bytes read from disk.
var ErrUnmappable = errors.New("text does not map onto original bytes")

// Edit replaces the characters of Text under Span with NewText.
type Edit struct {
	Span    Span
	NewText string
}

// Restore applies edits to the bytes the file was loaded from. Bytes outside
// the edited spans are kept as read: mixed line endings, decomposed
// characters and the BOM stay untouched. Edits must be sorted by Start and
// must not overlap.
func (f *File) Restore(edits []Edit) ([]byte, error) {
	raw := f.Raw
	if raw == nil {
		raw = f.Content
	}
	origin, err := f.origin(raw)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(raw))
	cursor := 0
	for _, e := range edits {
		if int(e.Span.End) >= len(origin) || e.Span.Start > e.Span.End {
			return nil, fmt.Errorf("edit %v outside %s: %w", e.Span, f.Path, ErrUnmappable)
		}
		start, end := origin[e.Span.Start], origin[e.Span.End]
		if start < cursor {
			return nil, fmt.Errorf("overlapping edit %v in %s: %w", e.Span, f.Path, ErrUnmappable)
		}
		out = append(out, raw[cursor:start]...)
		out = append(out, e.NewText...)
		cursor = end
	}
	return append(out, raw[cursor:]...), nil
}

// origin maps every rune offset of f.Text (plus the end offset) to a byte
// offset in raw, replaying the normalisations Load applied.
func (f *File) origin(raw []byte) ([]int, error) {
	start := 0
	if f.Flags&FileHadBOM != 0 && bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		start = 3
	}

	// CRLF: каждый байт текста помнит свою позицию в raw; \r\n -> позиция \r
	text := make([]byte, 0, len(raw)-start)
	pos := make([]int, 0, len(raw)-start+1)
	for i := start; i < len(raw); i++ {
		if f.Flags&FileNormalizedCRLF != 0 && raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
			text = append(text, '\n')
			pos = append(pos, i)
			i++
			continue
		}
		text = append(text, raw[i])
		pos = append(pos, i)
	}
	pos = append(pos, len(raw))

	origin := make([]int, 0, len(f.Text)+1)
	if f.Flags&FileNormalizedNFC == 0 {
		for i := 0; i < len(text); {
			_, size := utf8.DecodeRune(text[i:])
			origin = append(origin, pos[i])
			i += size
		}
	} else {
		// NFC по минимальным сегментам между границами нормализации:
		// нормальный сегмент отображается посимвольно, перекомпонованный
		// целиком на своё начало.
		for i := 0; i < len(text); {
			n := norm.NFC.NextBoundary(text[i:], true)
			if n <= 0 {
				n = len(text) - i
			}
			chunk := text[i : i+n]
			if norm.NFC.IsNormal(chunk) {
				for k := 0; k < len(chunk); {
					_, size := utf8.DecodeRune(chunk[k:])
					origin = append(origin, pos[i+k])
					k += size
				}
			} else {
				for range utf8.RuneCount(norm.NFC.Bytes(chunk)) {
					origin = append(origin, pos[i])
				}
			}
			i += n
		}
	}
	origin = append(origin, len(raw))

	if len(origin) != len(f.Text)+1 {
		return nil, fmt.Errorf("%s: %d characters map to %d: %w", f.Path, len(f.Text), len(origin)-1, ErrUnmappable)
	}
	return origin, nil
}
