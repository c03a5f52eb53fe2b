package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pthm/prosecheck/internal/config"
	"github.com/pthm/prosecheck/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	format     string
	configFile string

	// Set up by the root pre-run for every command
	appUI     *ui.UI
	appConfig *config.Config
	logger    *slog.Logger
)

// RootCmd is the prosecheck command tree
var RootCmd = &cobra.Command{
	Use:   "prosecheck",
	Short: "A writing assistant for clearer, tighter prose",
	Long: `prosecheck reviews English prose for passive voice, long sentences,
wordy phrases, complex words, filler words and hedging. It scores the text
on clarity, style, conciseness and tone, and suggests rewrites.

Rewrites fall back to simple substitutions. With an AI provider configured
(Gemini, Anthropic or a local Claude Code CLI) each flagged sentence gets a
personalized rewrite and the whole text gets coaching feedback.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	pf.StringVarP(&configFile, "config", "c", "", "Config file (default: ./prosecheck.yaml)")

	pf.String("provider", "", "AI provider (auto, none, gemini, anthropic, claude-code)")
	pf.String("api-key", "", "API key for the AI provider")
	pf.String("model", "", "Model to use instead of auto-discovery")
	pf.Duration("timeout", 0, "Timeout per AI request")
	pf.Int("rate", 0, "Maximum AI requests per minute")
	pf.Int("concurrency", 0, "Concurrent AI rewrite requests")
	pf.String("patterns", "", "Pattern table name or YAML table file")
}

func setup(cmd *cobra.Command, _ []string) error {
	if format != "terminal" && format != "json" {
		return fmt.Errorf("unknown format %q (expected terminal or json)", format)
	}

	appUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	logger = ui.NewLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := config.Load(config.Options{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	appConfig = cfg

	logger.Debug("config loaded",
		"provider", cfg.AI.Provider,
		"model", cfg.AI.Model,
		"rate", cfg.AI.RequestsPerMinute,
		"concurrency", cfg.AI.Concurrency,
		"patterns", cfg.Patterns,
	)
	return nil
}
