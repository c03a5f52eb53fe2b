package rules

import (
	"github.com/pthm/prosecheck/internal/patterns"
	"github.com/pthm/prosecheck/internal/tokenizer"
)

// IssueType identifies the kind of stylistic problem an issue describes
type IssueType string

const (
	PassiveVoice IssueType = "passive_voice"
	LongSentence IssueType = "long_sentence"
	Wordy        IssueType = "wordy"
	ComplexWords IssueType = "complex_words"
	WeakWords    IssueType = "weak_words"
	Hedging      IssueType = "hedging"

	// General is only used for rewrite requests that match no detector.
	General IssueType = "general"
)

// IssueTypes lists the detectable issue types in detection order.
var IssueTypes = []IssueType{PassiveVoice, LongSentence, Wordy, ComplexWords, WeakWords, Hedging}

// ParseIssueType converts a string to an IssueType, falling back to General
func ParseIssueType(s string) IssueType {
	switch IssueType(s) {
	case PassiveVoice, LongSentence, Wordy, ComplexWords, WeakWords, Hedging:
		return IssueType(s)
	default:
		return General
	}
}

// Category returns the scoring category the issue type belongs to.
func (t IssueType) Category() Category {
	switch t {
	case Wordy:
		return Conciseness
	case ComplexWords, WeakWords:
		return Style
	case Hedging:
		return Tone
	default:
		return Clarity
	}
}

// Category groups issue types for scoring
type Category string

const (
	Clarity     Category = "Clarity"
	Conciseness Category = "Conciseness"
	Style       Category = "Style"
	Tone        Category = "Tone"
)

// Categories lists every scoring category.
var Categories = []Category{Clarity, Style, Conciseness, Tone}

// Issue represents one detected stylistic problem tied to a sentence
type Issue struct {
	Type        IssueType `json:"type"`
	Category    Category  `json:"category"`
	Description string    `json:"issue"`
	Original    string    `json:"original"`

	// Fallback is a mechanical rewrite of Original. Empty when the rule
	// has no safe substitution.
	Fallback string `json:"fallback,omitempty"`
}

// HasFallback reports whether a mechanical rewrite is available.
func (i Issue) HasFallback() bool {
	return i.Fallback != ""
}

func newIssue(t IssueType, description, original string) Issue {
	return Issue{
		Type:        t,
		Category:    t.Category(),
		Description: description,
		Original:    original,
	}
}

// AnalysisContext holds the tokenized input shared by every rule.
// It is built once per analysis and never modified by rules.
type AnalysisContext struct {
	Text      string
	Sentences []string
	Words     []string
	Tables    *patterns.Tables

	sentenceWords [][]string
}

// NewAnalysisContext tokenizes text. A nil tables argument selects the
// built-in tables.
func NewAnalysisContext(text string, tables *patterns.Tables) *AnalysisContext {
	if tables == nil {
		tables = patterns.Default()
	}

	sentences := tokenizer.Sentences(text)
	sentenceWords := make([][]string, len(sentences))
	for i, s := range sentences {
		sentenceWords[i] = tokenizer.Words(s)
	}

	return &AnalysisContext{
		Text:          text,
		Sentences:     sentences,
		Words:         tokenizer.Words(text),
		Tables:        tables,
		sentenceWords: sentenceWords,
	}
}

// SentenceWords returns the word tokens of the i-th sentence.
func (ctx *AnalysisContext) SentenceWords(i int) []string {
	return ctx.sentenceWords[i]
}

// Rule defines the interface for a detection pass
type Rule interface {
	// Name returns the unique identifier for this rule
	Name() string

	// Description returns a human-readable description
	Description() string

	// Type returns the issue type this rule emits
	Type() IssueType

	// Run scans the context and returns issues in document order.
	Run(ctx *AnalysisContext) []Issue
}
