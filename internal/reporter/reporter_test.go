package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pthm/prosecheck/internal/analyzer"
	"github.com/pthm/prosecheck/internal/rules"
	"github.com/pthm/prosecheck/internal/suggest"
	"github.com/pthm/prosecheck/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment() *Assessment {
	wordy := rules.Issue{
		Type:        rules.Wordy,
		Category:    rules.Conciseness,
		Description: `Wordy: "in order to" → "to"`,
		Original:    "We left in order to rest.",
		Fallback:    "We left to rest.",
	}
	passive := rules.Issue{
		Type:        rules.PassiveVoice,
		Category:    rules.Clarity,
		Description: "Passive voice detected",
		Original:    "The cake was baked.",
	}

	return &Assessment{
		Source: "draft.txt",
		Result: analyzer.Result{
			Issues: []rules.Issue{wordy, passive},
			Scores: analyzer.Scores{Clarity: 8, Style: 10, Conciseness: 8, Tone: 10, Overall: 9},
			Stats:  analyzer.Stats{Words: 9, Sentences: 2, AvgLength: 4.5},
		},
		Message: analyzer.SelectMessage(9),
		Suggestions: []suggest.Suggestion{
			{Issue: wordy, Text: "We left to rest.", Source: suggest.SourceFallback, Notice: "Rate limit - wait 15 seconds"},
			{Issue: passive, Notice: suggest.NoSuggestionHint},
		},
	}
}

func TestTerminalReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, ui.NewStyles(false))
	require.NoError(t, r.Report(sampleAssessment()))

	out := buf.String()
	for _, want := range []string{
		"Assessment\n",
		"Overall 9 | Clarity 8 | Style 10 | Conciseness 8 | Tone 10\n",
		"9 words | 2 sentences | 4.5 avg words/sentence\n",
		"[*] Excellent work! Your writing is clear and polished.\n",
		"2 areas identified for revision\n",
		"Conciseness Wordy: \"in order to\" → \"to\"\n",
		"  Original: We left in order to rest.\n",
		"  Revised:  We left to rest.\n",
		"  WARN: Rate limit - wait 15 seconds (showing fallback)\n",
		"  Revised:  Enable AI suggestions for a personalized rewrite\n",
		footer,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "AI Writing Coach")
}

func TestTerminalReportNoIssues(t *testing.T) {
	a := &Assessment{
		Result:         analyzer.Analyze(""),
		Message:        analyzer.SelectMessage(10),
		AI:             AIInfo{Enabled: true},
		FeedbackNotice: "Rate limit exceeded. Please wait 15-30 seconds and try again.",
	}

	var buf bytes.Buffer
	require.NoError(t, NewTerminalReporter(&buf, ui.NewStyles(false)).Report(a))

	out := buf.String()
	assert.Contains(t, out, "OK: Excellent - no major issues found.")
	assert.Contains(t, out, "0 words | 0 sentences | 0.0 avg words/sentence")
	assert.Contains(t, out, "AI Writing Coach")
	assert.Contains(t, out, "WARN: Rate limit exceeded.")
	assert.NotContains(t, out, "areas identified")
}

func TestTerminalReportFeedbackAndTitle(t *testing.T) {
	a := sampleAssessment()
	a.Title = "Notes"
	a.AI = AIInfo{Enabled: true, Provider: "gemini", Model: "gemini-2.0-flash"}
	a.Feedback = "Nice rhythm overall."

	var buf bytes.Buffer
	require.NoError(t, NewTerminalReporter(&buf, ui.NewStyles(false)).Report(a))
	assert.True(t, strings.HasPrefix(buf.String(), "Assessment: Notes\n"))
	assert.Contains(t, buf.String(), "AI Writing Coach\n\nNice rhythm overall.\n")
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	r.runID = func() string { return "run-1" }
	require.NoError(t, r.Report(sampleAssessment()))

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "draft.txt", got.Source)
	assert.Equal(t, 9, got.Scores.Overall)
	assert.Equal(t, 4.5, got.Stats.AvgLength)
	assert.Equal(t, analyzer.GlyphStar, got.Message.Glyph)
	require.Len(t, got.Issues, 2)

	assert.Equal(t, JSONIssue{
		Type:       "wordy",
		Category:   "Conciseness",
		Issue:      `Wordy: "in order to" → "to"`,
		Original:   "We left in order to rest.",
		Fallback:   "We left to rest.",
		Suggestion: "We left to rest.",
		Source:     "fallback",
		Notice:     "Rate limit - wait 15 seconds",
	}, got.Issues[0])
	assert.Equal(t, "none", got.Issues[1].Source)

	assert.Equal(t, Summary{
		TotalIssues: 2,
		ByCategory:  map[string]int{"Conciseness": 1, "Clarity": 1},
		Fallbacks:   1,
		Unresolved:  1,
	}, got.Summary)
}

func TestJSONReportEmptyIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Report(&Assessment{Result: analyzer.Analyze("   ")}))

	assert.Contains(t, buf.String(), `"issues": []`)

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.RunID, 36)
}
