// Package analyzer runs the style rules over a text and turns the issues
// into scores, summary statistics and a headline message.
package analyzer

import (
	"github.com/pthm/prosecheck/internal/patterns"
	"github.com/pthm/prosecheck/internal/rules"
)

// MaxIssues is the most issues a Result carries. Detection order decides
// which ones survive.
const MaxIssues = 8

// Result is the outcome of one analysis pass
type Result struct {
	Issues []rules.Issue `json:"issues"`
	Scores Scores        `json:"scores"`
	Stats  Stats         `json:"stats"`
}

// Analyzer binds a rule registry to a set of pattern tables. It holds no
// per-call state and is safe for concurrent use.
type Analyzer struct {
	registry *rules.Registry
	tables   *patterns.Tables
}

// New creates an Analyzer. Nil arguments select the default registry and
// the built-in tables.
func New(registry *rules.Registry, tables *patterns.Tables) *Analyzer {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	if tables == nil {
		tables = patterns.Default()
	}
	return &Analyzer{registry: registry, tables: tables}
}

var defaultAnalyzer = New(nil, nil)

// Analyze runs the default rules and tables over text.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}

// Analyze detects issues in text and scores them. Empty or blank text
// yields no issues, perfect scores and zero stats.
func (a *Analyzer) Analyze(text string) Result {
	ctx := rules.NewAnalysisContext(text, a.tables)
	issues := a.registry.Detect(ctx)

	// Scores count everything detected, including issues cut by the cap.
	scores := ComputeScores(issues)

	if len(issues) > MaxIssues {
		issues = issues[:MaxIssues]
	}
	if issues == nil {
		issues = []rules.Issue{}
	}

	return Result{
		Issues: issues,
		Scores: scores,
		Stats:  ComputeStats(len(ctx.Words), len(ctx.Sentences)),
	}
}
