package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/prosecheck/internal/rules"
	"github.com/pthm/prosecheck/internal/suggest"
	"github.com/pthm/prosecheck/internal/ui"
)

const footer = "Good writing is rewriting. Keep refining."

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	return &TerminalReporter{w: w, styles: styles}
}

// Report outputs the assessment to the terminal
func (r *TerminalReporter) Report(a *Assessment) error {
	s := r.styles

	title := "Assessment"
	if a.Title != "" {
		title = fmt.Sprintf("Assessment: %s", a.Title)
	}
	fmt.Fprintln(r.w, s.Header.Render(title))
	fmt.Fprintln(r.w)

	r.printScores(a)
	r.printStats(a)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Message.Render(s.Glyph(a.Message.Glyph)+" "+a.Message.Text))

	r.printSeparator()
	if len(a.Result.Issues) == 0 {
		fmt.Fprintln(r.w, s.Success.Render(s.IconSuccess+" Excellent - no major issues found."))
	} else {
		r.printSuggestions(a)
	}

	if a.AI.Enabled {
		r.printFeedback(a)
	}

	r.printSeparator()
	fmt.Fprintln(r.w, s.Muted.Render(footer))
	return nil
}

type scoreCell struct {
	label string
	value int
}

func (r *TerminalReporter) printScores(a *Assessment) {
	sc := a.Result.Scores
	cells := []scoreCell{{"Overall", sc.Overall}}
	for _, c := range rules.Categories {
		cells = append(cells, scoreCell{string(c), sc.ForCategory(c)})
	}

	s := r.styles
	if !s.Enabled() {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprintf("%s %d", c.label, c.value)
		}
		fmt.Fprintln(r.w, strings.Join(parts, " | "))
		return
	}

	cards := make([]string, len(cells))
	for i, c := range cells {
		value := s.ScoreStyle(c.value).Render(fmt.Sprintf("%d", c.value))
		cards[i] = s.Card.Width(13).Render(value + "\n" + s.Muted.Render(c.label))
	}
	fmt.Fprintln(r.w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func (r *TerminalReporter) printStats(a *Assessment) {
	st := a.Result.Stats
	sep := " · "
	if !r.styles.Enabled() {
		sep = " | "
	}
	line := fmt.Sprintf("%d words%s%d sentences%s%.1f avg words/sentence",
		st.Words, sep, st.Sentences, sep, st.AvgLength)
	fmt.Fprintln(r.w, r.styles.Muted.Render(line))
}

func (r *TerminalReporter) printSuggestions(a *Assessment) {
	s := r.styles

	fmt.Fprintln(r.w, s.Header.Render("Suggestions"))
	fmt.Fprintln(r.w, s.Subheader.Render(fmt.Sprintf("%d areas identified for revision", len(a.Result.Issues))))

	for i, issue := range a.Result.Issues {
		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "%s %s\n", s.Badge.Render(string(issue.Category)), issue.Description)
		fmt.Fprintf(r.w, "  Original: %s\n", s.Original.Render(issue.Original))

		var sg suggest.Suggestion
		if i < len(a.Suggestions) {
			sg = a.Suggestions[i]
		} else {
			sg = suggest.Suggestion{Issue: issue, Notice: suggest.NoSuggestionHint}
		}

		switch {
		case sg.HasText():
			fmt.Fprintf(r.w, "  Revised:  %s\n", s.Revised.Render(sg.Text))
			if sg.Notice != "" {
				fmt.Fprintln(r.w, s.Warning.Render(fmt.Sprintf("  %s %s (showing fallback)", s.IconWarning, sg.Notice)))
			}
		default:
			fmt.Fprintf(r.w, "  Revised:  %s\n", s.Placeholder.Render(sg.Notice))
		}
	}
}

func (r *TerminalReporter) printFeedback(a *Assessment) {
	s := r.styles

	r.printSeparator()
	fmt.Fprintln(r.w, s.Header.Render("AI Writing Coach"))
	fmt.Fprintln(r.w)

	switch {
	case a.Feedback != "":
		fmt.Fprintln(r.w, a.Feedback)
	case a.FeedbackNotice != "":
		fmt.Fprintln(r.w, s.Warning.Render(s.IconWarning+" "+a.FeedbackNotice))
	}
}

func (r *TerminalReporter) printSeparator() {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render("─────────────────────────────────────"))
}
