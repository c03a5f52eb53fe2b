package rules

import (
	"fmt"
	"strings"
)

// WordyRule flags the first sentence containing each wordy phrase and
// offers the phrase's short form as a rewrite
type WordyRule struct{}

func (r *WordyRule) Name() string {
	return string(Wordy)
}

func (r *WordyRule) Description() string {
	return "Checks for padded phrases that have a shorter equivalent"
}

func (r *WordyRule) Type() IssueType {
	return Wordy
}

func (r *WordyRule) Run(ctx *AnalysisContext) []Issue {
	var issues []Issue

	lowered := lowerAll(ctx.Sentences)
	for i := range ctx.Tables.WordyPhrases {
		phrase := &ctx.Tables.WordyPhrases[i]

		for j, sentence := range ctx.Sentences {
			if !strings.Contains(lowered[j], phrase.Phrase) {
				continue
			}

			issue := newIssue(
				Wordy,
				fmt.Sprintf("Wordy: %q → %q", phrase.Phrase, phrase.Replacement),
				sentence,
			)
			issue.Fallback = phrase.Apply(sentence)
			issues = append(issues, issue)
			break
		}
	}

	return issues
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
