package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts prose from markdown files
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return DetectFormat(path) == FormatMarkdown
}

// Parse strips front matter and collects paragraph text. Each paragraph
// becomes one line of Text, separated by blank lines.
func (p *MarkdownParser) Parse(path string, content []byte) (*Document, error) {
	frontmatter, body := ParseFrontmatter(content)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	return &Document{
		Path:        path,
		Source:      content, // Keep original content
		Text:        extractProse(doc, body),
		Format:      FormatMarkdown,
		Frontmatter: frontmatter,
		Headings:    extractHeadings(doc, body),
	}, nil
}

// extractProse walks the AST and joins the inline text of paragraphs and
// list items. Headings, code blocks and raw HTML are skipped.
func extractProse(doc ast.Node, source []byte) string {
	var (
		blocks []string
		cur    strings.Builder
		depth  int
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			if entering {
				depth++
				return ast.WalkContinue, nil
			}
			depth--
			if s := strings.TrimSpace(cur.String()); s != "" {
				blocks = append(blocks, terminate(s))
			}
			cur.Reset()

		case *ast.Text:
			if !entering || depth == 0 {
				return ast.WalkContinue, nil
			}
			cur.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				cur.WriteByte(' ')
			}

		case *ast.String:
			if entering && depth > 0 {
				cur.Write(node.Value)
			}

		case *ast.AutoLink:
			if entering && depth > 0 {
				cur.Write(node.Label(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

// terminate ends a block with a period when it has no terminal
// punctuation, so list items and link lines stay separate sentences.
func terminate(block string) string {
	switch block[len(block)-1] {
	case '.', '!', '?':
		return block
	}
	return block + "."
}

// extractHeadings lists headings with their 1-based source line
func extractHeadings(doc ast.Node, source []byte) []Heading {
	var headings []Heading

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		// Get line number from the node's lines
		line := 1
		if heading.Lines().Len() > 0 {
			seg := heading.Lines().At(0)
			line = bytes.Count(source[:seg.Start], []byte("\n")) + 1
		}

		headings = append(headings, Heading{
			Title: headingText(heading, source),
			Level: heading.Level,
			Line:  line,
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

func headingText(h *ast.Heading, source []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		_ = ast.Walk(c, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := n.(*ast.Text); ok && entering {
				b.Write(t.Segment.Value(source))
			}
			return ast.WalkContinue, nil
		})
	}
	return strings.TrimSpace(b.String())
}
