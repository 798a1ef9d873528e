package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSyntaxSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все поддерживаемые файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".md", ".typ", ".txt":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addSyntaxSeeds covers unterminated constructs of every adapter.
func addSyntaxSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("Lets go to the store.\n\nOff course it is."))
	f.Add([]byte("```go\nunterminated"))
	f.Add([]byte("[link](unterminated"))
	f.Add([]byte("<!-- open comment"))
	f.Add([]byte("---\nfront: matter"))
	f.Add([]byte("$math without end"))
	f.Add([]byte("#let x = (\"open"))
	f.Add([]byte("#box[nested [deep"))
	f.Add([]byte("/* /* nested */"))
	f.Add([]byte("@ref. <label \\"))
	f.Add([]byte("12th 3.5 http://x.y/z\r\n\r\n\ttab"))
	f.Add([]byte{0xff, 0xfe, 'a', 0xc3})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
