package rules

import (
	"fmt"
	"strings"
)

// HedgingRule flags language that undercuts the writer's confidence. It
// reports at most one issue: the first table phrase found in any sentence.
type HedgingRule struct{}

func (r *HedgingRule) Name() string {
	return string(Hedging)
}

func (r *HedgingRule) Description() string {
	return "Checks for hedges such as \"maybe\" and \"I think\""
}

func (r *HedgingRule) Type() IssueType {
	return Hedging
}

func (r *HedgingRule) Run(ctx *AnalysisContext) []Issue {
	lowered := lowerAll(ctx.Sentences)

	for _, hedge := range ctx.Tables.HedgingPhrases {
		needle := strings.ToLower(hedge)
		for i, sentence := range ctx.Sentences {
			if strings.Contains(lowered[i], needle) {
				return []Issue{newIssue(Hedging, fmt.Sprintf("Hedging: %q", hedge), sentence)}
			}
		}
	}

	return nil
}
