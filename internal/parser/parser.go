package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupported is returned for files that are neither plain text nor markdown
var ErrUnsupported = errors.New("unsupported file type (expected .txt or .md)")

// Document is an input text ready for analysis
type Document struct {
	// Path is empty for stdin and inline text
	Path string

	// Source is the input exactly as read
	Source []byte

	// Text is the prose handed to the analyzer. For markdown it excludes
	// front matter, headings, code and HTML.
	Text string

	Format      Format
	Frontmatter map[string]interface{}

	// Headings are markdown headings in document order
	Headings []Heading
}

// Heading is one markdown heading
type Heading struct {
	Title string
	Level int
	Line  int
}

// Format identifies how an input is parsed
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	default:
		return "plain"
	}
}

// Name returns a display name for the document's origin
func (d *Document) Name() string {
	if d.Path == "" {
		return "<stdin>"
	}
	return d.Path
}

// Title returns the front matter title, else the first top-level heading
func (d *Document) Title() string {
	if t, ok := d.Frontmatter["title"].(string); ok && t != "" {
		return t
	}
	for _, h := range d.Headings {
		if h.Level == 1 {
			return h.Title
		}
	}
	return ""
}

// FieldCount is the whitespace-separated token count of the input, the
// figure reported when a file is loaded.
func (d *Document) FieldCount() int {
	return len(strings.Fields(string(d.Source)))
}

// Parser defines the interface for parsing input documents
type Parser interface {
	Parse(path string, content []byte) (*Document, error)
	CanParse(path string) bool
}

// ParseFile reads and parses a .txt or .md file
func ParseFile(path string) (*Document, error) {
	parser := getParser(path)
	if parser == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.Parse(path, content)
}

// ParseReader reads a whole document from r, typically stdin
func ParseReader(r io.Reader, format Format) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseBytes(content, format)
}

// ParseBytes parses in-memory content with no path
func ParseBytes(content []byte, format Format) (*Document, error) {
	if format == FormatMarkdown {
		return (&MarkdownParser{}).Parse("", content)
	}
	return (&PlainParser{}).Parse("", content)
}

// getParser returns the appropriate parser for a file, or nil
func getParser(path string) Parser {
	for _, p := range []Parser{&MarkdownParser{}, &PlainParser{}} {
		if p.CanParse(path) {
			return p
		}
	}
	return nil
}

// DetectFormat returns the Format for a given path
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatPlain
	}
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:endIdx])), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}
