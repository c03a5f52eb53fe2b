// Package patterns holds the ordered lookup tables the style rules match
// against: wordy phrases, complex words, filler words and hedges.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// Replacement maps a matched phrase or word to its plainer substitute.
type Replacement struct {
	Phrase      string `yaml:"phrase"`
	Replacement string `yaml:"replacement"`

	pattern *regexp.Regexp
}

// Pattern returns the compiled case-insensitive matcher for the phrase.
// Wordy phrases match anywhere; complex words match on word boundaries.
func (r *Replacement) Pattern() *regexp.Regexp {
	return r.pattern
}

// Apply substitutes every match of the phrase in s, ignoring case.
func (r *Replacement) Apply(s string) string {
	return r.pattern.ReplaceAllLiteralString(s, r.Replacement)
}

// Tables is one complete set of style tables.
type Tables struct {
	// Name identifies the table set (e.g., "english")
	Name string `yaml:"name"`

	// WeakWordThreshold is the count of filler words a text may contain
	// before it is flagged
	WeakWordThreshold int `yaml:"weak_word_threshold"`

	WordyPhrases   []Replacement `yaml:"wordy_phrases"`
	ComplexWords   []Replacement `yaml:"complex_words"`
	WeakWords      []string      `yaml:"weak_words"`
	HedgingPhrases []string      `yaml:"hedging_phrases"`

	weakSet map[string]struct{}
}

// IsWeakWord reports whether a lowercase word token is a filler word.
func (t *Tables) IsWeakWord(word string) bool {
	_, ok := t.weakSet[word]
	return ok
}

// compile validates the tables and prepares matchers. It must run before
// the tables are handed to any rule.
func (t *Tables) compile() error {
	if t.Name == "" {
		return fmt.Errorf("table set has no name")
	}
	if t.WeakWordThreshold < 0 {
		return fmt.Errorf("weak_word_threshold must not be negative, got %d", t.WeakWordThreshold)
	}

	for i := range t.WordyPhrases {
		r := &t.WordyPhrases[i]
		if err := r.validate("wordy_phrases", i); err != nil {
			return err
		}
		r.Phrase = strings.ToLower(r.Phrase)
		r.pattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.Phrase))
	}

	for i := range t.ComplexWords {
		r := &t.ComplexWords[i]
		if err := r.validate("complex_words", i); err != nil {
			return err
		}
		r.Phrase = strings.ToLower(r.Phrase)
		r.pattern = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(r.Phrase) + `\b`)
	}

	t.weakSet = make(map[string]struct{}, len(t.WeakWords))
	for i, w := range t.WeakWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return fmt.Errorf("weak_words[%d]: empty entry", i)
		}
		t.WeakWords[i] = w
		t.weakSet[w] = struct{}{}
	}

	for i, h := range t.HedgingPhrases {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("hedging_phrases[%d]: empty entry", i)
		}
	}

	return nil
}

func (r *Replacement) validate(table string, i int) error {
	if strings.TrimSpace(r.Phrase) == "" {
		return fmt.Errorf("%s[%d]: empty phrase", table, i)
	}
	if strings.TrimSpace(r.Replacement) == "" {
		return fmt.Errorf("%s[%d] (%q): empty replacement", table, i, r.Phrase)
	}
	return nil
}
