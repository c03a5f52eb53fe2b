package cmd

import (
	"fmt"
	"strings"

	"github.com/pthm/prosecheck/internal/fixer"
	"github.com/spf13/cobra"
)

var (
	fixInput   inputFlags
	dryRun     bool
	writeFixes bool
	fixNoAI    bool
)

var fixCmd = &cobra.Command{
	Use:   "fix [file]",
	Short: "Apply suggested rewrites to a text",
	Long: `Rewrite each flagged sentence with its suggestion.

The revised text is printed unless --write is given, which updates the file
in place. Sentences that no longer appear verbatim in the source (for
example when markdown formatting splits them) are left alone.

Examples:
  prosecheck fix --dry-run essay.txt
  prosecheck fix --write essay.md
  prosecheck fix --no-ai --text "We met at this point in time."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixInput.register(fixCmd)
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show edits without applying them")
	fixCmd.Flags().BoolVarP(&writeFixes, "write", "w", false, "Write changes back to the file")
	fixCmd.Flags().BoolVar(&fixNoAI, "no-ai", false, "Use only mechanical rewrites")
	RootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	if dryRun && writeFixes {
		return fmt.Errorf("--dry-run and --write cannot be used together")
	}

	doc, err := fixInput.readDocument(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(doc.Text) == "" {
		appUI.Warn("Please enter some text to analyze.")
		return nil
	}

	ctx := cmd.Context()
	client := newClient(ctx, fixNoAI)
	if client != nil {
		defer client.Close()
	}

	a, err := assess(ctx, doc, client, false)
	if err != nil {
		return err
	}

	res, err := fixer.New(fixer.Options{DryRun: dryRun, Write: writeFixes}, appUI).Fix(doc, a.Suggestions)
	if err != nil {
		return err
	}
	for _, e := range res.Edits {
		if e.Status != fixer.StatusApplied {
			logger.Debug("edit skipped", "type", e.Type, "status", e.Status.String(), "sentence", e.Original)
		}
	}
	return nil
}
