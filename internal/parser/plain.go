package parser

import (
	"path/filepath"
	"strings"
)

// PlainParser parses plain text files with no special structure
type PlainParser struct{}

// CanParse returns true for .txt files and files without an extension
func (p *PlainParser) CanParse(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ""
}

// Parse keeps the content as-is
func (p *PlainParser) Parse(path string, content []byte) (*Document, error) {
	return &Document{
		Path:   path,
		Source: content,
		Text:   string(content),
		Format: FormatPlain,
	}, nil
}
