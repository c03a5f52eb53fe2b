package rules

import "fmt"

// LongSentenceRule flags every sentence with more words than MaxWords
type LongSentenceRule struct {
	MaxWords int
}

func (r *LongSentenceRule) Name() string {
	return string(LongSentence)
}

func (r *LongSentenceRule) Description() string {
	return "Checks for sentences that are too long to read comfortably"
}

func (r *LongSentenceRule) Type() IssueType {
	return LongSentence
}

func (r *LongSentenceRule) Run(ctx *AnalysisContext) []Issue {
	var issues []Issue

	for i, sentence := range ctx.Sentences {
		wordCount := len(ctx.SentenceWords(i))
		if wordCount > r.MaxWords {
			issues = append(issues, newIssue(
				LongSentence,
				fmt.Sprintf("Long sentence (%d words)", wordCount),
				sentence,
			))
		}
	}

	return issues
}
