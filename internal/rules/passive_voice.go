package rules

import "regexp"

// PassiveVoiceRule flags sentences built around a "to be" verb followed by
// a past participle
type PassiveVoiceRule struct {
	// MaxMatches caps how many sentences are flagged across the text.
	// Zero means no cap.
	MaxMatches int
}

var passivePattern = regexp.MustCompile(`(?i)\b(is|are|was|were|been|being)\s+\w+ed\b`)

func (r *PassiveVoiceRule) Name() string {
	return string(PassiveVoice)
}

func (r *PassiveVoiceRule) Description() string {
	return "Checks for passive constructions such as \"was reviewed\""
}

func (r *PassiveVoiceRule) Type() IssueType {
	return PassiveVoice
}

func (r *PassiveVoiceRule) Run(ctx *AnalysisContext) []Issue {
	var issues []Issue

	for _, sentence := range ctx.Sentences {
		if !passivePattern.MatchString(sentence) {
			continue
		}

		issues = append(issues, newIssue(PassiveVoice, "Passive voice detected", sentence))
		if r.MaxMatches > 0 && len(issues) >= r.MaxMatches {
			break
		}
	}

	return issues
}
