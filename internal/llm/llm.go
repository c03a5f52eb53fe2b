// Package llm talks to hosted language models for sentence rewrites and
// whole-text coaching. Nothing in the analysis engine depends on it; every
// failure here surfaces as an *Error the caller can degrade around.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pthm/prosecheck/internal/rules"
	"golang.org/x/time/rate"
)

// Provider represents an LLM provider
type Provider string

const (
	// ProviderNone disables AI suggestions
	ProviderNone Provider = "none"
	// ProviderGemini is Google Gemini through the Generative Language API
	ProviderGemini Provider = "gemini"
	// ProviderAnthropic is the Anthropic Messages API
	ProviderAnthropic Provider = "anthropic"
	// ProviderClaudeCode shells out to a local Claude Code CLI
	ProviderClaudeCode Provider = "claude-code"
)

// Config is everything a client needs. It is built by the caller and
// passed in; clients never read the environment themselves.
type Config struct {
	Provider Provider
	APIKey   string

	// Model overrides model discovery when set
	Model string

	// Timeout bounds each request. Zero means no per-request timeout.
	Timeout time.Duration

	// RequestsPerMinute throttles requests client-side. Zero disables it.
	RequestsPerMinute int
}

// Client is an abstraction over LLM providers
type Client interface {
	// Rewrite returns a rewritten version of a flagged sentence, trimmed
	Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error)
	// Feedback returns a narrative critique of the whole text
	Feedback(ctx context.Context, text string) (string, error)
	// ResolveModel returns the model identifier requests are sent to
	ResolveModel(ctx context.Context) string
	// Models lists the model identifiers the credentials can use
	Models(ctx context.Context) ([]string, error)
	// Ping verifies the credentials with a cheap request
	Ping(ctx context.Context) error
	// Close releases any resources held by the client
	Close() error
}

// New creates a client for the configured provider, wrapped with the
// configured timeout and rate limit.
func New(ctx context.Context, cfg Config) (Client, error) {
	var (
		c   Client
		err error
	)

	switch cfg.Provider {
	case ProviderGemini:
		c, err = NewGeminiClient(ctx, cfg)
	case ProviderAnthropic:
		c, err = NewAnthropicClient(cfg)
	case ProviderClaudeCode:
		c, err = NewClaudeCodeClient(cfg)
	case ProviderNone, "":
		return nil, &Error{Kind: KindUnavailable, Op: OpConnect, Err: errors.New("AI suggestions are disabled")}
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return newLimitedClient(c, cfg), nil
}

// limitedClient applies the request budget and timeout around a provider
type limitedClient struct {
	Client
	limiter *rate.Limiter
	timeout time.Duration
}

func newLimitedClient(c Client, cfg Config) *limitedClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	return &limitedClient{Client: c, limiter: limiter, timeout: cfg.Timeout}
}

func (c *limitedClient) begin(ctx context.Context, op Op) (context.Context, context.CancelFunc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		// Wait fails early when the next slot lies past the deadline
		kind := KindRateLimited
		if ctx.Err() != nil {
			kind = KindOther
		}
		return nil, nil, &Error{Kind: kind, Op: op, Err: err}
	}
	if c.timeout <= 0 {
		return ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	return ctx, cancel, nil
}

func (c *limitedClient) Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error) {
	ctx, cancel, err := c.begin(ctx, OpRewrite)
	if err != nil {
		return "", err
	}
	defer cancel()
	return c.Client.Rewrite(ctx, issueType, original)
}

func (c *limitedClient) Feedback(ctx context.Context, text string) (string, error) {
	ctx, cancel, err := c.begin(ctx, OpFeedback)
	if err != nil {
		return "", err
	}
	defer cancel()
	return c.Client.Feedback(ctx, text)
}
