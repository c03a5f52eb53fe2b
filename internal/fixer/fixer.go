// Package fixer writes resolved suggestions back into the source text.
package fixer

import (
	"fmt"
	"os"
	"strings"

	"github.com/pthm/prosecheck/internal/parser"
	"github.com/pthm/prosecheck/internal/rules"
	"github.com/pthm/prosecheck/internal/suggest"
	"github.com/pthm/prosecheck/internal/ui"
)

// Options configures the fixer behavior
type Options struct {
	DryRun bool

	// Write replaces the input file in place. Without it the revised
	// text is printed.
	Write bool
}

// EditStatus records what happened to an edit
type EditStatus int

const (
	StatusPending EditStatus = iota
	StatusApplied
	// StatusNotFound means the sentence no longer appears verbatim, as
	// happens when markdown formatting splits it
	StatusNotFound
	// StatusOverlap means an earlier edit already rewrote the sentence
	StatusOverlap
)

func (s EditStatus) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusNotFound:
		return "not found"
	case StatusOverlap:
		return "overlaps an earlier edit"
	default:
		return "pending"
	}
}

// Edit replaces one sentence
type Edit struct {
	Type        rules.IssueType
	Original    string
	Replacement string
	Source      suggest.Source
	Status      EditStatus
}

// Result is the outcome of fixing one document
type Result struct {
	Text    string
	Edits   []Edit
	Applied int
}

// Plan turns suggestions into edits. Suggestions without text are
// dropped, and only the first edit per sentence is kept.
func Plan(suggestions []suggest.Suggestion) []Edit {
	edits := make([]Edit, 0, len(suggestions))
	seen := make(map[string]bool)

	for _, s := range suggestions {
		if !s.HasText() || s.Text == s.Issue.Original {
			continue
		}

		e := Edit{
			Type:        s.Issue.Type,
			Original:    s.Issue.Original,
			Replacement: s.Text,
			Source:      s.Source,
		}
		if seen[e.Original] {
			e.Status = StatusOverlap
		}
		seen[e.Original] = true
		edits = append(edits, e)
	}
	return edits
}

// Apply replaces the first occurrence of each pending edit's sentence.
// The returned edits carry their final status.
func Apply(text string, edits []Edit) Result {
	out := make([]Edit, len(edits))
	copy(out, edits)

	res := Result{Text: text}
	for i := range out {
		e := &out[i]
		if e.Status != StatusPending {
			continue
		}
		if !strings.Contains(res.Text, e.Original) {
			e.Status = StatusNotFound
			continue
		}
		res.Text = strings.Replace(res.Text, e.Original, e.Replacement, 1)
		e.Status = StatusApplied
		res.Applied++
	}
	res.Edits = out
	return res
}

// Fixer applies suggestions to documents
type Fixer struct {
	opts Options
	ui   *ui.UI
}

// New creates a new Fixer
func New(opts Options, u *ui.UI) *Fixer {
	return &Fixer{opts: opts, ui: u}
}

// Fix applies suggestions to doc and either reports, prints or writes
// the result depending on the options.
func (f *Fixer) Fix(doc *parser.Document, suggestions []suggest.Suggestion) (Result, error) {
	res := Apply(string(doc.Source), Plan(suggestions))

	if f.opts.DryRun {
		f.printDryRun(res)
		return res, nil
	}

	if f.opts.Write {
		if doc.Path == "" {
			return res, fmt.Errorf("cannot write changes: input was not read from a file")
		}
		if res.Applied > 0 {
			if err := os.WriteFile(doc.Path, []byte(res.Text), 0644); err != nil {
				return res, fmt.Errorf("failed to write %s: %w", doc.Path, err)
			}
		}
		fmt.Fprintln(f.ui.Writer, f.ui.Styles.Success.Render(
			fmt.Sprintf("%s Applied %d of %d edits to %s", f.ui.Styles.IconSuccess, res.Applied, len(res.Edits), doc.Path),
		))
		return res, nil
	}

	fmt.Fprint(f.ui.Writer, res.Text)
	if !strings.HasSuffix(res.Text, "\n") {
		fmt.Fprintln(f.ui.Writer)
	}
	return res, nil
}

func (f *Fixer) printDryRun(res Result) {
	w := f.ui.Writer
	s := f.ui.Styles

	if len(res.Edits) == 0 {
		fmt.Fprintln(w, s.Success.Render(s.IconSuccess+" Nothing to fix"))
		return
	}

	for _, e := range res.Edits {
		fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("Would fix: %s", e.Type)))
		fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("  Source: %s, %s", e.Source, e.Status)))
		fmt.Fprintln(w, s.Original.Render("  - "+e.Original))
		fmt.Fprintln(w, s.Revised.Render("  + "+strings.ReplaceAll(e.Replacement, "\n", "\n  + ")))
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d of %d edits would apply\n", res.Applied, len(res.Edits))
}
