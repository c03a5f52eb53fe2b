package rules

import "fmt"

// ComplexWordsRule flags sentences that use a word with a plainer synonym.
// Each complex word is reported once, and each sentence at most once.
type ComplexWordsRule struct{}

func (r *ComplexWordsRule) Name() string {
	return string(ComplexWords)
}

func (r *ComplexWordsRule) Description() string {
	return "Checks for formal vocabulary that has an everyday alternative"
}

func (r *ComplexWordsRule) Type() IssueType {
	return ComplexWords
}

func (r *ComplexWordsRule) Run(ctx *AnalysisContext) []Issue {
	var issues []Issue
	found := make(map[string]bool)

	for _, sentence := range ctx.Sentences {
		for i := range ctx.Tables.ComplexWords {
			word := &ctx.Tables.ComplexWords[i]
			if found[word.Phrase] || !word.Pattern().MatchString(sentence) {
				continue
			}

			issue := newIssue(
				ComplexWords,
				fmt.Sprintf("Complex: %q → %q", word.Phrase, word.Replacement),
				sentence,
			)
			issue.Fallback = word.Apply(sentence)
			issues = append(issues, issue)
			found[word.Phrase] = true
			break
		}
	}

	return issues
}
