// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is a normalized, deduplicated collection of skill labels.
// Labels are compared case-insensitively; the canonical (title-cased) form
// of the first insertion is retained for display.
type SkillSet struct {
	labels map[string]string // lowercase key -> canonical label
}

// NewSkillSet creates a SkillSet from zero or more labels.
func NewSkillSet(labels ...string) *SkillSet {
	s := &SkillSet{labels: make(map[string]string)}
	for _, label := range labels {
		s.Add(label)
	}
	return s
}

// Add inserts a label into the set. Empty labels are ignored.
// The first canonical form seen for a label wins.
func (s *SkillSet) Add(label string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	key := strings.ToLower(trimmed)
	if _, exists := s.labels[key]; !exists {
		s.labels[key] = trimmed
	}
}

// Has reports whether the set contains a label (case-insensitive).
func (s *SkillSet) Has(label string) bool {
	_, ok := s.labels[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// Len returns the number of distinct labels in the set.
func (s *SkillSet) Len() int {
	return len(s.labels)
}

// Labels returns the canonical labels in sorted order.
func (s *SkillSet) Labels() []string {
	out := make([]string, 0, len(s.labels))
	for _, label := range s.labels {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array of labels.
func (s *SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Labels())
}

// UnmarshalJSON decodes a JSON array of labels into the set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	s.labels = make(map[string]string, len(labels))
	for _, label := range labels {
		s.Add(label)
	}
	return nil
}
