// Package tokenizer splits prose into sentences and lowercase word tokens.
package tokenizer

import (
	"regexp"
	"strings"
)

// sentenceBoundary matches terminal punctuation followed by whitespace,
// including Unicode spaces such as no-break and em spaces. The split
// happens on the whitespace run so the punctuation stays with the
// sentence it ends.
var sentenceBoundary = regexp.MustCompile(`[.!?]([\s\v\p{Z}\x{85}]+)`)

var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// Sentences splits text into trimmed, non-empty sentences in document order.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringSubmatchIndex(text, -1) {
		// loc[2]:loc[3] is the whitespace run
		sentences = appendSentence(sentences, text[start:loc[2]])
		start = loc[3]
	}
	sentences = appendSentence(sentences, text[start:])

	return sentences
}

func appendSentence(sentences []string, piece string) []string {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return sentences
	}
	return append(sentences, piece)
}

// Words returns every run of ASCII letters in text, lowercased.
func Words(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
