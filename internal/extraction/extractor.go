// Package extraction maps free text to a normalized set of known skill
// labels using vocabulary and whole-word matching.
package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/careeriq/internal/types"
)

// PhraseSegmenter segments text into candidate noun phrases. It is an
// optional enrichment; a nil segmenter disables the phrase pass.
type PhraseSegmenter interface {
	Segment(text string) []string
}

// vocabularyEntry pairs a vocabulary term with its precompiled whole-word pattern.
type vocabularyEntry struct {
	term    string
	pattern *regexp.Regexp
}

// Extractor extracts skills from resume and job description text.
// The vocabulary is compiled once at construction and is safe for
// concurrent use.
type Extractor struct {
	entries   []vocabularyEntry
	segmenter PhraseSegmenter
}

// NewExtractor creates an Extractor with the built-in vocabulary.
// segmenter may be nil, in which case the noun-phrase pass is skipped.
func NewExtractor(segmenter PhraseSegmenter) *Extractor {
	terms := make([]string, 0, len(technicalSkills)+len(softSkills))
	terms = append(terms, technicalSkills...)
	terms = append(terms, softSkills...)

	entries := make([]vocabularyEntry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, vocabularyEntry{
			term:    term,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}

	return &Extractor{entries: entries, segmenter: segmenter}
}

// Extract returns the set of known skills found in text. Empty input yields
// an empty set, never an error.
func (e *Extractor) Extract(text string) *types.SkillSet {
	skills := types.NewSkillSet()
	if text == "" {
		return skills
	}

	for _, entry := range e.entries {
		if entry.pattern.MatchString(text) {
			skills.Add(TitleCase(entry.term))
		}
	}

	if e.segmenter != nil {
		e.extractFromPhrases(text, skills)
	}

	return skills
}

// extractFromPhrases adds vocabulary entries that overlap candidate noun
// phrases in either containment direction.
func (e *Extractor) extractFromPhrases(text string, skills *types.SkillSet) {
	for _, phrase := range e.segmenter.Segment(text) {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if len(phrase) <= 2 || len(phrase) >= 30 {
			continue
		}
		for _, entry := range e.entries {
			if strings.Contains(phrase, entry.term) || strings.Contains(entry.term, phrase) {
				skills.Add(TitleCase(entry.term))
			}
		}
	}
}

// TitleCase upper-cases the first letter of every word, treating any
// non-letter as a word boundary ("rest api" -> "Rest Api", "ci/cd" -> "Ci/Cd").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
