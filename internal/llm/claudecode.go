package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/prosecheck/internal/rules"
	claudecode "github.com/severity1/claude-agent-sdk-go"
)

const defaultClaudeCodeModel = "sonnet"

// claudeCodeModels are the aliases the CLI accepts
var claudeCodeModels = []string{"haiku", "sonnet", "opus"}

// ClaudeCodeClient runs prompts through a local Claude Code CLI. It needs
// no API key; the CLI carries its own login.
type ClaudeCodeClient struct {
	model string
}

// NewClaudeCodeClient creates a client for the local CLI. The CLI is only
// probed by Ping, so construction never blocks.
func NewClaudeCodeClient(cfg Config) (*ClaudeCodeClient, error) {
	model := cfg.Model
	if model == "" {
		model = defaultClaudeCodeModel
	}
	return &ClaudeCodeClient{model: model}, nil
}

func (c *ClaudeCodeClient) Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error) {
	text, err := c.query(ctx, RewritePrompt(issueType, original))
	if err != nil {
		return "", classifyClaudeCode(OpRewrite, err)
	}
	return text, nil
}

func (c *ClaudeCodeClient) Feedback(ctx context.Context, text string) (string, error) {
	out, err := c.query(ctx, FeedbackPrompt(text))
	if err != nil {
		return "", classifyClaudeCode(OpFeedback, err)
	}
	return out, nil
}

func (c *ClaudeCodeClient) ResolveModel(context.Context) string {
	return c.model
}

func (c *ClaudeCodeClient) Models(context.Context) ([]string, error) {
	return claudeCodeModels, nil
}

// Ping runs a trivial query to confirm the CLI is installed and logged in
func (c *ClaudeCodeClient) Ping(ctx context.Context) error {
	_, err := c.query(ctx, "Reply with the single word: ok")
	if err != nil {
		return classifyClaudeCode(OpConnect, err)
	}
	return nil
}

func (c *ClaudeCodeClient) Close() error {
	return nil
}

func (c *ClaudeCodeClient) query(ctx context.Context, prompt string) (string, error) {
	it, err := claudecode.Query(ctx, prompt,
		claudecode.WithModel(c.model),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		return "", fmt.Errorf("claude code error: %w", err)
	}
	defer it.Close()

	var b strings.Builder
	for {
		message, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				break
			}
			return "", fmt.Errorf("error reading claude response: %w", err)
		}

		if assistantMsg, ok := message.(*claudecode.AssistantMessage); ok {
			for _, block := range assistantMsg.Content {
				if textBlock, ok := block.(*claudecode.TextBlock); ok {
					b.WriteString(textBlock.Text)
				}
			}
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("empty response from claude code")
	}
	return text, nil
}

func classifyClaudeCode(op Op, err error) error {
	if claudecode.IsCLINotFoundError(err) {
		return &Error{Kind: KindUnavailable, Op: op, Err: errors.New("Claude Code CLI not found")}
	}
	return classify(op, err, false)
}
