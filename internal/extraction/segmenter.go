package extraction

import (
	"regexp"
	"strings"
)

// phraseDelimiters splits text into candidate phrases at punctuation and
// common conjunctions. This is a rough stand-in for proper noun-phrase
// chunking; the extractor only uses phrases to cross-check the vocabulary,
// so precision matters more than recall.
var phraseDelimiters = regexp.MustCompile(`[,;:.()\n\t]|\band\b|\bor\b|\bwith\b|\busing\b`)

// DelimiterSegmenter is a lightweight PhraseSegmenter that splits text on
// punctuation and conjunctions.
type DelimiterSegmenter struct{}

// Segment splits text into trimmed lowercase phrase candidates.
func (DelimiterSegmenter) Segment(text string) []string {
	parts := phraseDelimiters.Split(strings.ToLower(text), -1)
	phrases := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			phrases = append(phrases, part)
		}
	}
	return phrases
}
