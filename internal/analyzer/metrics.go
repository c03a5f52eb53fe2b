package analyzer

import (
	"math"

	"github.com/pthm/prosecheck/internal/rules"
)

const (
	maxScore       = 10
	minScore       = 5
	penaltyPerHit  = 2
	avgLengthScale = 10 // one decimal place
)

// Scores holds the per-category sub-scores and their rounded mean
type Scores struct {
	Clarity     int `json:"clarity"`
	Style       int `json:"style"`
	Conciseness int `json:"conciseness"`
	Tone        int `json:"tone"`
	Overall     int `json:"overall"`
}

// ForCategory returns the sub-score of a category
func (s Scores) ForCategory(c rules.Category) int {
	switch c {
	case rules.Clarity:
		return s.Clarity
	case rules.Style:
		return s.Style
	case rules.Conciseness:
		return s.Conciseness
	case rules.Tone:
		return s.Tone
	default:
		return 0
	}
}

// ComputeScores turns issue counts into sub-scores in [5, 10]. The overall
// score is the mean rounded half away from zero.
func ComputeScores(issues []rules.Issue) Scores {
	counts := make(map[rules.Category]int)
	for _, issue := range issues {
		counts[issue.Category]++
	}

	s := Scores{
		Clarity:     subScore(counts[rules.Clarity]),
		Style:       subScore(counts[rules.Style]),
		Conciseness: subScore(counts[rules.Conciseness]),
		Tone:        subScore(counts[rules.Tone]),
	}
	sum := s.Clarity + s.Style + s.Conciseness + s.Tone
	s.Overall = int(math.Round(float64(sum) / 4))

	return s
}

func subScore(n int) int {
	return max(minScore, maxScore-penaltyPerHit*n)
}

// Stats summarizes the size of the input
type Stats struct {
	Words     int     `json:"words"`
	Sentences int     `json:"sentences"`
	AvgLength float64 `json:"avg_length"`
}

// ComputeStats derives the average sentence length, rounded to one decimal.
// The denominator is floored at one so empty input averages to zero.
func ComputeStats(words, sentences int) Stats {
	avg := float64(words) / float64(max(sentences, 1))
	return Stats{
		Words:     words,
		Sentences: sentences,
		AvgLength: math.Round(avg*avgLengthScale) / avgLengthScale,
	}
}
