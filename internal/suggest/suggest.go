// Package suggest picks the rewrite shown for each issue: an external
// rewrite when one is available, otherwise the rule's mechanical fallback.
package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pthm/prosecheck/internal/rules"
	"golang.org/x/sync/errgroup"
)

// ErrNoSuggestion is returned when an issue has no mechanical rewrite.
var ErrNoSuggestion = errors.New("no mechanical rewrite available")

// NoSuggestionHint is shown in place of a rewrite when no rewriter is
// configured and the issue has no fallback.
const NoSuggestionHint = "Enable AI suggestions for a personalized rewrite"

// Resolve returns the issue's fallback rewrite, or ErrNoSuggestion.
func Resolve(issue rules.Issue) (string, error) {
	if !issue.HasFallback() {
		return "", ErrNoSuggestion
	}
	return issue.Fallback, nil
}

// Rewriter produces an external rewrite of a flagged sentence.
type Rewriter interface {
	Rewrite(ctx context.Context, issueType rules.IssueType, original string) (string, error)
}

// noticer is implemented by rewriter errors that carry a short message
// meant for the reader.
type noticer interface {
	Notice() string
}

// Source records where a suggestion's text came from
type Source int

const (
	SourceNone Source = iota
	SourceFallback
	SourceRewriter
)

func (s Source) String() string {
	switch s {
	case SourceFallback:
		return "fallback"
	case SourceRewriter:
		return "ai"
	default:
		return "none"
	}
}

// Suggestion is an issue paired with the rewrite to display
type Suggestion struct {
	Issue  rules.Issue
	Text   string
	Source Source

	// Notice explains a missing or degraded rewrite. When Text is empty
	// it is the placeholder to show instead.
	Notice string
}

// HasText reports whether there is a rewrite to show.
func (s Suggestion) HasText() bool {
	return s.Text != ""
}

// Options configures a Resolver
type Options struct {
	// Rewriter is optional. Without it every suggestion is the fallback.
	Rewriter Rewriter

	// Concurrency bounds in-flight rewrite requests. Values below one
	// mean one.
	Concurrency int

	// OnStart is called before each issue is resolved and OnResolved
	// after. Both may be called from several goroutines.
	OnStart    func(rules.Issue)
	OnResolved func()

	Logger *slog.Logger
}

// Resolver resolves suggestions for issues
type Resolver struct {
	opts Options
}

// NewResolver creates a Resolver
func NewResolver(opts Options) *Resolver {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{opts: opts}
}

// Resolve picks the rewrite for a single issue. It never fails: rewriter
// errors degrade to the fallback and are reported through Notice.
func (r *Resolver) Resolve(ctx context.Context, issue rules.Issue) Suggestion {
	s := Suggestion{Issue: issue}
	if text, err := Resolve(issue); err == nil {
		s.Text = text
		s.Source = SourceFallback
	}

	if r.opts.Rewriter == nil {
		if !s.HasText() {
			s.Notice = NoSuggestionHint
		}
		return s
	}

	rewrite, err := r.opts.Rewriter.Rewrite(ctx, issue.Type, issue.Original)
	if err != nil {
		r.opts.Logger.Debug("rewrite failed", "type", issue.Type, "error", err)
		s.Notice = notice(err)
		return s
	}

	rewrite = strings.TrimSpace(rewrite)
	if rewrite == "" {
		if !s.HasText() {
			s.Notice = "No rewrite returned"
		}
		return s
	}

	s.Text = rewrite
	s.Source = SourceRewriter
	return s
}

// ResolveAll resolves every issue, keeping the input order. Rewrite
// requests run concurrently up to the configured limit.
func (r *Resolver) ResolveAll(ctx context.Context, issues []rules.Issue) []Suggestion {
	out := make([]Suggestion, len(issues))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, issue := range issues {
		g.Go(func() error {
			if r.opts.OnStart != nil {
				r.opts.OnStart(issue)
			}
			out[i] = r.Resolve(gCtx, issue)
			if r.opts.OnResolved != nil {
				r.opts.OnResolved()
			}
			return nil
		})
	}

	// Workers never return errors
	_ = g.Wait()

	return out
}

func notice(err error) string {
	var n noticer
	if errors.As(err, &n) {
		return n.Notice()
	}
	return "AI error: " + truncate(err.Error(), 100)
}

// truncate shortens s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
