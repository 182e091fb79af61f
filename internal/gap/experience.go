package gap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/careeriq/internal/types"
)

// Experience levels, from least to most experienced.
const (
	LevelFresher = "fresher"
	LevelJunior  = "junior"
	LevelMid     = "mid"
	LevelSenior  = "senior"
)

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?|yr)`)

// levelIndicators maps each level to the resume phrases that signal it.
// Checked in this order; the first level with a hit wins before the numeric
// override is applied.
var levelIndicators = []struct {
	level      string
	indicators []string
}{
	{LevelFresher, []string{"intern", "internship", "student", "graduate", "fresher", "entry level"}},
	{LevelJunior, []string{"junior", "associate", "1 year", "2 years"}},
	{LevelMid, []string{"mid-level", "3 years", "4 years", "5 years", "experienced"}},
	{LevelSenior, []string{"senior", "lead", "architect", "principal", "6+ years", "7+ years"}},
}

var levelDescriptions = map[string]string{
	LevelFresher: "Entry-level candidate with limited professional experience",
	LevelJunior:  "Early-career professional with 1-2 years of experience",
	LevelMid:     "Mid-level professional with 3-5 years of experience",
	LevelSenior:  "Experienced professional with 5+ years of expertise",
}

// AssessExperience classifies the candidate's seniority from resume text.
// Keyword indicators give an initial guess, then the largest "N years"
// mention overrides it via fixed buckets: 0 -> fresher, <=2 -> junior,
// <=5 -> mid, else senior. A resume with no years mention at all lands on
// fresher regardless of keywords.
func AssessExperience(resumeText string) types.ExperienceLevel {
	resumeLower := strings.ToLower(resumeText)

	totalYears := 0
	for _, match := range yearsPattern.FindAllStringSubmatch(resumeLower, -1) {
		years, err := strconv.Atoi(match[1])
		if err == nil && years > totalYears {
			totalYears = years
		}
	}

	level := LevelMid
	for _, entry := range levelIndicators {
		found := false
		for _, indicator := range entry.indicators {
			if strings.Contains(resumeLower, indicator) {
				found = true
				break
			}
		}
		if found {
			level = entry.level
			break
		}
	}

	switch {
	case totalYears == 0:
		level = LevelFresher
	case totalYears <= 2:
		level = LevelJunior
	case totalYears <= 5:
		level = LevelMid
	default:
		level = LevelSenior
	}

	description, ok := levelDescriptions[level]
	if !ok {
		description = "Professional candidate"
	}

	return types.ExperienceLevel{
		Level:       level,
		Years:       totalYears,
		Description: description,
	}
}
