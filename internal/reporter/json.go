package reporter

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/pthm/prosecheck/internal/analyzer"
	"github.com/pthm/prosecheck/internal/version"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w     io.Writer
	runID func() string
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w, runID: uuid.NewString}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	RunID          string           `json:"run_id"`
	Version        string           `json:"version"`
	Source         string           `json:"source"`
	Title          string           `json:"title,omitempty"`
	Scores         analyzer.Scores  `json:"scores"`
	Stats          analyzer.Stats   `json:"stats"`
	Message        analyzer.Message `json:"message"`
	Issues         []JSONIssue      `json:"issues"`
	Summary        Summary          `json:"summary"`
	AI             AIInfo           `json:"ai"`
	Feedback       string           `json:"feedback,omitempty"`
	FeedbackNotice string           `json:"feedback_notice,omitempty"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Original   string `json:"original"`
	Fallback   string `json:"fallback,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Source     string `json:"source"`
	Notice     string `json:"notice,omitempty"`
}

// Report outputs the assessment as JSON
func (r *JSONReporter) Report(a *Assessment) error {
	output := JSONOutput{
		RunID:          r.runID(),
		Version:        version.Short(),
		Source:         a.Source,
		Title:          a.Title,
		Scores:         a.Result.Scores,
		Stats:          a.Result.Stats,
		Message:        a.Message,
		Issues:         make([]JSONIssue, 0, len(a.Result.Issues)),
		Summary:        ComputeSummary(a),
		AI:             a.AI,
		Feedback:       a.Feedback,
		FeedbackNotice: a.FeedbackNotice,
	}

	for i, issue := range a.Result.Issues {
		ji := JSONIssue{
			Type:     string(issue.Type),
			Category: string(issue.Category),
			Issue:    issue.Description,
			Original: issue.Original,
			Fallback: issue.Fallback,
			Source:   "none",
		}
		if i < len(a.Suggestions) {
			sg := a.Suggestions[i]
			ji.Suggestion = sg.Text
			ji.Source = sg.Source.String()
			ji.Notice = sg.Notice
		}
		output.Issues = append(output.Issues, ji)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
