package rules

// WeakWordsRule flags filler words once their total count across the text
// exceeds the table threshold. Only the first sentence using one is
// reported.
type WeakWordsRule struct{}

func (r *WeakWordsRule) Name() string {
	return string(WeakWords)
}

func (r *WeakWordsRule) Description() string {
	return "Checks for overuse of filler words such as \"very\" and \"just\""
}

func (r *WeakWordsRule) Type() IssueType {
	return WeakWords
}

func (r *WeakWordsRule) Run(ctx *AnalysisContext) []Issue {
	count := 0
	for _, w := range ctx.Words {
		if ctx.Tables.IsWeakWord(w) {
			count++
		}
	}
	if count <= ctx.Tables.WeakWordThreshold {
		return nil
	}

	for i, sentence := range ctx.Sentences {
		for _, w := range ctx.SentenceWords(i) {
			if ctx.Tables.IsWeakWord(w) {
				return []Issue{newIssue(WeakWords, "Contains filler words", sentence)}
			}
		}
	}

	return nil
}
