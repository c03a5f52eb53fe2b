package cmd

import (
	"context"
	"errors"

	"github.com/pthm/prosecheck/internal/analyzer"
	"github.com/pthm/prosecheck/internal/llm"
	"github.com/pthm/prosecheck/internal/parser"
	"github.com/pthm/prosecheck/internal/reporter"
	"github.com/pthm/prosecheck/internal/rules"
	"github.com/pthm/prosecheck/internal/suggest"
	"github.com/pthm/prosecheck/internal/ui"
)

// newClient builds the configured AI client. It returns nil without an
// error when AI is disabled or unusable, after warning about the latter.
func newClient(ctx context.Context, disabled bool) llm.Client {
	if disabled || !appConfig.AIEnabled() {
		return nil
	}

	client, err := llm.New(ctx, appConfig.LLM())
	if err != nil {
		if llm.IsUnavailable(err) {
			appUI.Warn("AI suggestions disabled: %s", llmNotice(err))
		} else {
			appUI.Warn("AI client failed to start, using built-in rewrites: %s", llmNotice(err))
		}
		logger.Debug("AI client unavailable", "error", err)
		return nil
	}
	return client
}

// llmNotice returns the reader-facing message for an AI failure
func llmNotice(err error) string {
	var e *llm.Error
	if errors.As(err, &e) {
		return e.Notice()
	}
	return "Error: " + err.Error()
}

// assess runs the analysis and, when a client is given, the AI rewrites
// and optional coaching feedback.
func assess(ctx context.Context, doc *parser.Document, client llm.Client, withFeedback bool) (*reporter.Assessment, error) {
	tables, err := appConfig.Tables()
	if err != nil {
		return nil, err
	}

	progress := appUI.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	progress.SetStage(ui.StageAnalyze)
	result := analyzer.New(nil, tables).Analyze(doc.Text)
	logger.Debug("analysis complete",
		"issues", len(result.Issues),
		"overall", result.Scores.Overall,
		"words", result.Stats.Words,
	)

	opts := suggest.Options{
		Concurrency: appConfig.AI.Concurrency,
		OnResolved:  progress.TaskDone,
		Logger:      logger,
	}
	if client != nil {
		opts.Rewriter = client
		opts.OnStart = func(issue rules.Issue) {
			progress.SetOperation("rewriting " + string(issue.Type))
		}
		progress.SetStage(ui.StageSuggest)
		progress.SetTaskCount(len(result.Issues))
	}
	suggestions := suggest.NewResolver(opts).ResolveAll(ctx, result.Issues)

	a := &reporter.Assessment{
		Source:      doc.Name(),
		Title:       doc.Title(),
		Result:      result,
		Message:     analyzer.SelectMessage(result.Scores.Overall),
		Suggestions: suggestions,
	}

	if client != nil {
		a.AI = reporter.AIInfo{
			Enabled:  true,
			Provider: appConfig.AI.Provider,
			Model:    client.ResolveModel(ctx),
		}

		if withFeedback {
			progress.SetStage(ui.StageFeedback)
			feedback, err := client.Feedback(ctx, doc.Text)
			if err != nil {
				if llm.IsRateLimited(err) {
					logger.Warn("feedback rate limited", "error", err)
				} else {
					logger.Debug("feedback failed", "error", err)
				}
				a.FeedbackNotice = llmNotice(err)
			} else {
				a.Feedback = feedback
			}
		}
	}

	progress.SetStage(ui.StageDone)
	return a, nil
}
