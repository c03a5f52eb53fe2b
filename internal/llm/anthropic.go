package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pthm/prosecheck/internal/rules"
)

// AnthropicClient implements Client against the Anthropic Messages API
type AnthropicClient struct {
	client anthropic.Client
	models *modelResolver
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, unavailable(ErrNoAPIKey)
	}

	c := &AnthropicClient{client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey))}
	c.models = &modelResolver{configured: cfg.Model, pref: anthropicModels, list: c.Models}
	return c, nil
}

func (c *AnthropicClient) Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error) {
	text, err := c.message(ctx, RewritePrompt(issueType, original), 1024)
	if err != nil {
		return "", classifyAnthropic(OpRewrite, err)
	}
	return text, nil
}

func (c *AnthropicClient) Feedback(ctx context.Context, text string) (string, error) {
	out, err := c.message(ctx, FeedbackPrompt(text), 2000)
	if err != nil {
		return "", classifyAnthropic(OpFeedback, err)
	}
	return out, nil
}

func (c *AnthropicClient) ResolveModel(ctx context.Context) string {
	return c.models.resolve(ctx)
}

func (c *AnthropicClient) Models(ctx context.Context) ([]string, error) {
	var ids []string
	pager := c.client.Models.ListAutoPaging(ctx, anthropic.ModelListParams{})
	for pager.Next() {
		ids = append(ids, pager.Current().ID)
	}
	if err := pager.Err(); err != nil {
		return nil, classifyAnthropic(OpModels, err)
	}
	return ids, nil
}

func (c *AnthropicClient) Ping(ctx context.Context) error {
	_, err := c.Models(ctx)
	return err
}

func (c *AnthropicClient) Close() error {
	return nil
}

func (c *AnthropicClient) message(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.ResolveModel(ctx)),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func classifyAnthropic(op Op, err error) error {
	var apiErr *anthropic.Error
	limited := errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
	return classify(op, err, limited)
}
