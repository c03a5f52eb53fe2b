package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pthm/prosecheck/internal/rules"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	models *modelResolver
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, unavailable(ErrNoAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, unavailable(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	c := &GeminiClient{client: client}
	c.models = &modelResolver{configured: cfg.Model, pref: geminiModels, list: c.Models}
	return c, nil
}

// Rewrite asks the model for a rewrite of one sentence
func (c *GeminiClient) Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error) {
	text, err := c.generate(ctx, RewritePrompt(issueType, original))
	if err != nil {
		return "", classifyGemini(OpRewrite, err)
	}
	return text, nil
}

// Feedback asks the model for a critique of the whole text
func (c *GeminiClient) Feedback(ctx context.Context, text string) (string, error) {
	out, err := c.generate(ctx, FeedbackPrompt(text))
	if err != nil {
		return "", classifyGemini(OpFeedback, err)
	}
	return out, nil
}

// ResolveModel returns the configured model or the best discovered one
func (c *GeminiClient) ResolveModel(ctx context.Context) string {
	return c.models.resolve(ctx)
}

// Models lists every model the key can see, with the resource prefix intact
func (c *GeminiClient) Models(ctx context.Context) ([]string, error) {
	var names []string
	it := c.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, classifyGemini(OpModels, err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// Ping lists models, which is free and proves the key works
func (c *GeminiClient) Ping(ctx context.Context) error {
	names, err := c.Models(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return &Error{Kind: KindOther, Op: OpModels, Err: errors.New("no models available for this key")}
	}
	return nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.ResolveModel(ctx))
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return geminiText(resp)
}

// geminiText joins the text parts of the first candidate
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("no content in response")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func classifyGemini(op Op, err error) error {
	var apiErr *googleapi.Error
	limited := errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
	return classify(op, err, limited)
}
