package llm

import (
	"fmt"

	"github.com/pthm/prosecheck/internal/rules"
)

const rewriteOnly = "Return ONLY the rewritten sentence:"

var rewriteInstructions = map[rules.IssueType]string{
	rules.PassiveVoice: "Rewrite this sentence in active voice. " + rewriteOnly,
	rules.LongSentence: "Break this into 2-3 shorter, clearer sentences. Return ONLY the rewritten text:",
	rules.Wordy:        "Make this more concise. " + rewriteOnly,
	rules.ComplexWords: "Simplify using everyday words. " + rewriteOnly,
	rules.WeakWords:    "Remove filler words and strengthen this. " + rewriteOnly,
	rules.Hedging:      "Make this more confident and direct. " + rewriteOnly,
	rules.General:      "Improve clarity and impact. " + rewriteOnly,
}

// RewritePrompt builds the single-sentence rewrite prompt. Unknown issue
// types get the general instruction.
func RewritePrompt(issueType rules.IssueType, original string) string {
	instruction, ok := rewriteInstructions[issueType]
	if !ok {
		instruction = rewriteInstructions[rules.General]
	}
	return fmt.Sprintf("%s\n\n%s", instruction, original)
}

// FeedbackPrompt builds the whole-text coaching prompt
func FeedbackPrompt(text string) string {
	return fmt.Sprintf(`You are a helpful writing coach. Analyze this text and provide friendly, actionable feedback.

For each issue you find:
1. Quote the problematic text
2. Explain briefly why it could be improved
3. Provide a specific rewritten version

Focus on: clarity, conciseness, tone, and impact. Be encouraging!

TEXT:
%s

Provide your feedback in a clear, organized format.`, text)
}
