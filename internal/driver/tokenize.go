package driver

import (
	"quill/internal/dict"
	"quill/internal/document"
	"quill/internal/parsers"
	"quill/internal/source"
)

type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Parser   parsers.Name
	Document *document.Document
}

// Tokenize loads path and runs a parser over it without linting. An empty
// parser name picks one by extension; a nil dictionary means the curated one.
func Tokenize(path string, parser parsers.Name, d dict.Dictionary) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, parser, d)
}

// TokenizeText is Tokenize for in-memory content.
func TokenizeText(name string, content []byte, parser parsers.Name, d dict.Dictionary) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	return tokenizeLoaded(fs, fs.AddVirtual(name, content), parser, d)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, parser parsers.Name, d dict.Dictionary) (*TokenizeResult, error) {
	opts := Options{Parser: parser, Dict: d}
	if parser != "" {
		if _, ok := parsers.ByName(parser); !ok {
			return nil, errUnknownParser(parser)
		}
	}
	file := fs.Get(id)
	p, name := opts.parserFor(file.Path)
	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Parser:   name,
		Document: document.NewFromRunes(file.Text, p, opts.dictionary()),
	}, nil
}
