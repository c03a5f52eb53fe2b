// Package reporter renders a finished assessment for people or machines.
package reporter

import (
	"github.com/pthm/prosecheck/internal/analyzer"
	"github.com/pthm/prosecheck/internal/suggest"
)

// Reporter defines the interface for outputting an assessment
type Reporter interface {
	// Report outputs the assessment
	Report(a *Assessment) error
}

// Assessment is everything known about one input after analysis
type Assessment struct {
	Source string
	Title  string

	Result  analyzer.Result
	Message analyzer.Message

	// Suggestions pairs each reported issue with its rewrite, in issue order
	Suggestions []suggest.Suggestion

	AI AIInfo

	// Feedback is the AI coach's critique. When it is empty,
	// FeedbackNotice says why.
	Feedback       string
	FeedbackNotice string
}

// AIInfo describes the AI collaborator used, if any
type AIInfo struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
}

// Summary holds summary counts for an assessment
type Summary struct {
	TotalIssues int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	Rewritten   int            `json:"ai_rewrites"`
	Fallbacks   int            `json:"fallbacks"`
	Unresolved  int            `json:"unresolved"`
}

// ComputeSummary computes summary counts from the suggestions
func ComputeSummary(a *Assessment) Summary {
	s := Summary{
		TotalIssues: len(a.Result.Issues),
		ByCategory:  make(map[string]int),
	}

	for _, issue := range a.Result.Issues {
		s.ByCategory[string(issue.Category)]++
	}
	for _, sg := range a.Suggestions {
		switch sg.Source {
		case suggest.SourceRewriter:
			s.Rewritten++
		case suggest.SourceFallback:
			s.Fallbacks++
		default:
			s.Unresolved++
		}
	}

	return s
}
