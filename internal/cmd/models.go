package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/prosecheck/internal/llm"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available to the configured provider",
	Long: `List the models the configured credentials can use. The model that
requests will be sent to is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	RootCmd.AddCommand(modelsCmd)
}

type modelsOutput struct {
	Provider string   `json:"provider"`
	Selected string   `json:"selected"`
	Models   []string `json:"models"`
}

func runModels(cmd *cobra.Command, _ []string) error {
	if !appConfig.AIEnabled() {
		return errNoProvider
	}

	ctx := cmd.Context()
	client, err := llm.New(ctx, appConfig.LLM())
	if err != nil {
		return errors.New(llmNotice(err))
	}
	defer client.Close()

	names, err := client.Models(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	selected := client.ResolveModel(ctx)

	if appUI.IsJSON() {
		encoder := json.NewEncoder(appUI.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(modelsOutput{Provider: appConfig.AI.Provider, Selected: selected, Models: names})
	}

	s := appUI.Styles
	for _, name := range names {
		marker := " "
		if name == selected || strings.TrimPrefix(name, "models/") == selected {
			marker = "*"
		}
		fmt.Fprintf(appUI.Writer, "%s %s\n", marker, name)
	}
	fmt.Fprintln(appUI.Writer, s.Muted.Render(fmt.Sprintf("%d models, using %s", len(names), selected)))
	return nil
}
