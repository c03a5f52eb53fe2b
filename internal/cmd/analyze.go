package cmd

import (
	"strings"

	"github.com/pthm/prosecheck/internal/reporter"
	"github.com/spf13/cobra"
)

var (
	analyzeInput inputFlags
	noAI         bool
	noFeedback   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a text and suggest revisions",
	Long: `Analyze prose from a .txt or .md file, --text, or stdin.

Markdown files are reduced to their paragraph text first; headings, code
and HTML are skipped. Use --raw to analyze the file as-is.

Examples:
  prosecheck analyze essay.md
  prosecheck analyze --text "The report was written by the team."
  cat draft.txt | prosecheck analyze --no-ai
  prosecheck analyze --format json essay.txt > report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeInput.register(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip AI rewrites and feedback")
	analyzeCmd.Flags().BoolVar(&noFeedback, "no-feedback", false, "Skip the AI writing coach")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	doc, err := analyzeInput.readDocument(cmd, args)
	if err != nil {
		return err
	}

	if strings.TrimSpace(doc.Text) == "" {
		appUI.Warn("Please enter some text to analyze.")
		return nil
	}

	ctx := cmd.Context()
	client := newClient(ctx, noAI)
	if client != nil {
		defer client.Close()
	}

	a, err := assess(ctx, doc, client, !noFeedback)
	if err != nil {
		return err
	}

	var rep reporter.Reporter
	if appUI.IsJSON() {
		rep = reporter.NewJSONReporter(appUI.Writer)
	} else {
		rep = reporter.NewTerminalReporter(appUI.Writer, appUI.Styles)
	}
	return rep.Report(a)
}
