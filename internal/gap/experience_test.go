package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessExperience_YearsOverrideKeywords(t *testing.T) {
	// "intern" suggests fresher, but 7 years wins.
	result := AssessExperience("Started as an intern, now 7 years of backend experience.")

	assert.Equal(t, LevelSenior, result.Level)
	assert.Equal(t, 7, result.Years)
	assert.Contains(t, result.Description, "5+ years")
}

func TestAssessExperience_NoYearsMeansFresher(t *testing.T) {
	result := AssessExperience("Senior architect leading large platform teams.")

	assert.Equal(t, LevelFresher, result.Level)
	assert.Zero(t, result.Years)
}

func TestAssessExperience_Buckets(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		level string
		years int
	}{
		{"one year is junior", "1 year of professional work", LevelJunior, 1},
		{"two years is junior", "2 years building APIs", LevelJunior, 2},
		{"three years is mid", "3 years at Acme", LevelMid, 3},
		{"five years is mid", "5 years of development", LevelMid, 5},
		{"six years is senior", "over 6 years shipping software", LevelSenior, 6},
		{"yrs abbreviation", "4 yrs in data engineering", LevelMid, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AssessExperience(tt.text)
			assert.Equal(t, tt.level, result.Level)
			assert.Equal(t, tt.years, result.Years)
		})
	}
}

func TestAssessExperience_TakesMaximumMention(t *testing.T) {
	result := AssessExperience("1 year at Acme, then 6+ years at Globex.")

	assert.Equal(t, 6, result.Years)
	assert.Equal(t, LevelSenior, result.Level)
}

func TestAssessExperience_EmptyText(t *testing.T) {
	result := AssessExperience("")

	assert.Equal(t, LevelFresher, result.Level)
	assert.Equal(t, "Entry-level candidate with limited professional experience", result.Description)
}
