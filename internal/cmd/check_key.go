package cmd

import (
	"errors"
	"fmt"

	"github.com/pthm/prosecheck/internal/llm"
	"github.com/spf13/cobra"
)

var errNoProvider = errors.New("no AI provider configured: set GOOGLE_API_KEY or ANTHROPIC_API_KEY, or pass --provider")

var checkKeyCmd = &cobra.Command{
	Use:   "check-key",
	Short: "Verify the AI provider credentials",
	Long: `Make a cheap request to the configured AI provider to confirm the
credentials work. For Gemini and Anthropic this lists the available models;
for Claude Code it runs a one-word query through the local CLI.`,
	Args: cobra.NoArgs,
	RunE: runCheckKey,
}

func init() {
	RootCmd.AddCommand(checkKeyCmd)
}

func runCheckKey(cmd *cobra.Command, _ []string) error {
	if !appConfig.AIEnabled() {
		return errNoProvider
	}

	ctx := cmd.Context()
	client, err := llm.New(ctx, appConfig.LLM())
	if err != nil {
		return errors.New(llmNotice(err))
	}
	defer client.Close()

	spinner := appUI.StartSimpleSpinner(appUI.ErrWriter, "Testing...")
	err = client.Ping(ctx)
	spinner.Stop()
	if err != nil {
		logger.Debug("ping failed", "error", err)
		return fmt.Errorf("invalid API key: %w", err)
	}

	appUI.Success("API key works! (%s, model %s)", appConfig.AI.Provider, client.ResolveModel(ctx))
	return nil
}
