package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pthm/prosecheck/internal/parser"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass a .txt or .md file, use --text, or pipe text on stdin")

// inputFlags are shared by commands that read a document
type inputFlags struct {
	text string
	raw  bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Analyze this text instead of a file")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Treat markdown files as plain text")
}

// readDocument loads the input from --text, a file argument, or stdin
func (f *inputFlags) readDocument(cmd *cobra.Command, args []string) (*parser.Document, error) {
	if f.text != "" {
		return parser.ParseBytes([]byte(f.text), parser.FormatPlain)
	}

	if len(args) > 0 && args[0] != "-" {
		path := args[0]
		var (
			doc *parser.Document
			err error
		)
		if f.raw {
			doc, err = parseRaw(path)
		} else {
			doc, err = parser.ParseFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		appUI.Info("Loaded %d words", doc.FieldCount())
		return doc, nil
	}

	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok && len(args) == 0 && term.IsTerminal(int(file.Fd())) {
		return nil, errNoInput
	}
	return parser.ParseReader(in, parser.FormatPlain)
}

func parseRaw(path string) (*parser.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parser.ParseBytes(content, parser.FormatPlain)
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}
