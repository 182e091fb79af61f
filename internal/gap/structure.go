package gap

import (
	"math"
	"regexp"

	"github.com/jonathan/careeriq/internal/types"
)

// sectionPatterns detects the five sections a well-formed resume should have.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"summary", regexp.MustCompile(`(?i)(summary|objective|profile)`)},
	{"experience", regexp.MustCompile(`(?i)(experience|work history|employment)`)},
	{"education", regexp.MustCompile(`(?i)(education|academic|qualification)`)},
	{"skills", regexp.MustCompile(`(?i)(skills?|technical skills?|competencies)`)},
	{"projects", regexp.MustCompile(`(?i)(projects?|portfolio)`)},
}

// AssessStructure scores the resume by what fraction of the expected
// sections it contains, scaled to 0-100 and rounded to one decimal.
func AssessStructure(resumeText string) types.StructureAssessment {
	sections := make(map[string]bool, len(sectionPatterns))
	present := 0
	for _, section := range sectionPatterns {
		found := section.pattern.MatchString(resumeText)
		sections[section.name] = found
		if found {
			present++
		}
	}

	score := math.Round(float64(present)/float64(len(sectionPatterns))*100*10) / 10

	var issues []string
	if !sections["summary"] {
		issues = append(issues, "Missing summary/objective section")
	}
	if !sections["skills"] {
		issues = append(issues, "Missing dedicated skills section")
	}
	if !sections["projects"] {
		issues = append(issues, "No projects section found")
	}

	quality := "Needs Improvement"
	switch {
	case score >= 80:
		quality = "Excellent"
	case score >= 60:
		quality = "Good"
	}

	return types.StructureAssessment{
		Score:           score,
		SectionsPresent: sections,
		Issues:          issues,
		Quality:         quality,
	}
}
