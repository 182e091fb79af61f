// Package gap performs the rule-based deep analysis of a resume against a
// target role: strengths with evidence, weaknesses, missing fundamentals,
// structure quality, experience level, and the role readiness score.
package gap

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/careeriq/internal/roles"
	"github.com/jonathan/careeriq/internal/types"
)

// evidenceLimit caps the length of evidence snippets attached to strengths.
const evidenceLimit = 100

// Analyzer produces GapReports. It is stateless apart from immutable
// configuration and safe for concurrent use.
type Analyzer struct {
	classifier roles.Classifier
	aiEnabled  bool
}

// NewAnalyzer creates an Analyzer. classifier picks the target role from the
// job description; a nil classifier falls back to first-match. aiEnabled
// only feeds the confidence estimate, the analysis itself is fully local.
func NewAnalyzer(classifier roles.Classifier, aiEnabled bool) *Analyzer {
	if classifier == nil {
		classifier = roles.FirstMatch{}
	}
	return &Analyzer{classifier: classifier, aiEnabled: aiEnabled}
}

// Analyze runs the full gap analysis. It is deterministic for fixed inputs
// and never fails: sparse input just produces a sparse report.
func (a *Analyzer) Analyze(resumeText, jobDescription string, resumeSkills, jobSkills *types.SkillSet) *types.GapReport {
	targetRole := a.classifier.Classify(jobDescription)
	profile := roles.ProfileFor(targetRole)

	strengths := a.analyzeStrengths(resumeText, resumeSkills, profile)
	weaknesses := a.analyzeWeaknesses(resumeText, resumeSkills, jobSkills, profile)
	missing := a.missingFundamentals(resumeText, profile)

	return &types.GapReport{
		TargetRole:          targetRole,
		ExperienceLevel:     AssessExperience(resumeText),
		Strengths:           strengths,
		Weaknesses:          weaknesses,
		MissingFundamentals: missing,
		ResumeStructure:     AssessStructure(resumeText),
		RoleReadiness:       computeReadiness(strengths, missing),
		Confidence:          a.confidence(resumeText, jobDescription),
	}
}

func (a *Analyzer) analyzeStrengths(resumeText string, resumeSkills *types.SkillSet, profile roles.Profile) types.Strengths {
	resumeLower := strings.ToLower(resumeText)

	strengths := types.Strengths{}
	for _, priority := range roles.PriorityOrder {
		for _, fundamental := range profile.Fundamentals[priority] {
			if strings.Contains(resumeLower, strings.ToLower(fundamental)) {
				strengths.Fundamentals = append(strengths.Fundamentals, types.FundamentalMatch{
					Skill:    fundamental,
					Priority: priority,
					Evidence: findEvidence(resumeText, fundamental),
				})
			}
		}
	}
	for _, priority := range roles.PriorityOrder {
		for _, skill := range profile.Skills[priority] {
			if strings.Contains(resumeLower, strings.ToLower(skill)) || resumeSkills.Has(skill) {
				strengths.TechnicalSkills = append(strengths.TechnicalSkills, types.SkillStrength{
					Skill:    skill,
					Priority: priority,
				})
			}
		}
	}

	strengths.ExperienceHighlights = extractHighlights(resumeText)
	strengths.Projects = extractProjects(resumeText)
	return strengths
}

func (a *Analyzer) analyzeWeaknesses(resumeText string, resumeSkills, jobSkills *types.SkillSet, profile roles.Profile) types.Weaknesses {
	resumeLower := strings.ToLower(resumeText)

	weaknesses := types.Weaknesses{}
	for _, priority := range roles.PriorityOrder {
		for _, fundamental := range profile.Fundamentals[priority] {
			if !strings.Contains(resumeLower, strings.ToLower(fundamental)) {
				weaknesses.MissingFundamentals = append(weaknesses.MissingFundamentals, types.MissingRequirement{
					Skill:      fundamental,
					Priority:   priority,
					Importance: importanceLabel(priority),
				})
			}
		}
	}

	for _, jobSkill := range jobSkills.Labels() {
		if resumeSkills.Has(jobSkill) {
			continue
		}
		priority := types.PriorityMedium
		if profile.ContainsTerm(jobSkill) {
			priority = types.PriorityHigh
		}
		weaknesses.MissingSkills = append(weaknesses.MissingSkills, types.MissingSkill{
			Skill:    jobSkill,
			Priority: priority,
		})
	}

	weaknesses.ImprovementAreas = improvementAreas(resumeText)
	return weaknesses
}

func (a *Analyzer) missingFundamentals(resumeText string, profile roles.Profile) []types.MissingFundamental {
	resumeLower := strings.ToLower(resumeText)

	var missing []types.MissingFundamental
	for _, priority := range roles.PriorityOrder {
		for _, fundamental := range profile.Fundamentals[priority] {
			if !strings.Contains(resumeLower, strings.ToLower(fundamental)) {
				missing = append(missing, types.MissingFundamental{
					Skill:        fundamental,
					Priority:     priority,
					Impact:       impactLabel(priority),
					WhyImportant: whyImportant(fundamental, profile.Name),
				})
			}
		}
	}
	return missing
}

// confidence estimates how trustworthy the analysis is from the amount of
// input text and whether advisory enrichment is on.
func (a *Analyzer) confidence(resumeText, jobDescription string) float64 {
	textScore := min(float64(len(resumeText))/1000, 1.0) * 30
	jobScore := min(float64(len(jobDescription))/500, 1.0) * 20
	aiScore := 30.0
	if a.aiEnabled {
		aiScore = 50.0
	}
	return min(100, textScore+jobScore+aiScore)
}

func importanceLabel(priority string) string {
	switch priority {
	case types.PriorityHigh:
		return "Critical"
	case types.PriorityMedium:
		return "Important"
	default:
		return "Nice to have"
	}
}

func impactLabel(priority string) string {
	switch priority {
	case types.PriorityHigh:
		return "High"
	case types.PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// whyImportantTable explains the most common fundamentals. Anything not
// listed falls back to a generic sentence templated with skill and role.
var whyImportantTable = map[string]string{
	"Data Structures":   "Essential for solving coding problems efficiently",
	"Algorithms":        "Core requirement for technical interviews and problem-solving",
	"System Design":     "Critical for designing scalable systems",
	"OOP":               "Fundamental programming paradigm used in all modern languages",
	"API Design":        "Core skill for backend development",
	"Database Systems":  "Essential for data persistence and management",
	"JavaScript":        "Foundation of modern web development",
	"React/Vue/Angular": "Industry-standard frontend frameworks",
	"Machine Learning":  "Core requirement for ML roles",
	"Python":            "Primary language for data science and ML",
}

func whyImportant(skill, role string) string {
	if why, ok := whyImportantTable[skill]; ok {
		return why
	}
	return "Important skill for " + role + " role"
}

// findEvidence returns a snippet around the first resume line mentioning the
// skill: one line of context on each side, truncated with an ellipsis.
func findEvidence(resumeText, skill string) string {
	skillLower := strings.ToLower(skill)
	lines := strings.Split(resumeText, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), skillLower) {
			continue
		}
		start := i - 1
		if start < 0 {
			start = 0
		}
		end := i + 2
		if end > len(lines) {
			end = len(lines)
		}
		context := strings.Join(lines[start:end], " ")
		if len(context) > evidenceLimit {
			cut := evidenceLimit
			// Back off to a rune boundary so the snippet stays valid UTF-8.
			for cut > 0 && !utf8.RuneStart(context[cut]) {
				cut--
			}
			context = context[:cut]
		}
		return context + "..."
	}
	return "Mentioned in resume"
}

var (
	highlightPattern = regexp.MustCompile(`(?i)(?:increased|improved|reduced|built|developed|managed|led).*?(?:\d+%|\d+\s*(?:users|projects|team))`)
	metricsPattern   = regexp.MustCompile(`\d+%|\d+\s*(?:users|projects)`)
	linksPattern     = regexp.MustCompile(`(?i)(github|git|portfolio)`)
	projectSection   = regexp.MustCompile(`(?is)projects?[:\n](.*?)(?:\n\n|\n[A-Z])`)
)

// extractHighlights pulls up to five quantified achievement phrases.
func extractHighlights(resumeText string) []string {
	matches := highlightPattern.FindAllString(resumeText, 5)
	return matches
}

// extractProjects pulls up to five project lines from a projects section.
func extractProjects(resumeText string) []types.ProjectHighlight {
	var projects []types.ProjectHighlight
	section := projectSection.FindStringSubmatch(resumeText)
	if section == nil {
		return projects
	}
	lines := strings.Split(section[1], "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 10 {
			projects = append(projects, types.ProjectHighlight{Name: line})
		}
	}
	return projects
}

// improvementAreas flags common resume-wide issues.
func improvementAreas(resumeText string) []string {
	var areas []string
	resumeLower := strings.ToLower(resumeText)

	if !metricsPattern.MatchString(resumeLower) {
		areas = append(areas, "Add quantified achievements (metrics, numbers)")
	}
	if len(strings.Fields(resumeText)) < 200 {
		areas = append(areas, "Resume is too short - add more detail")
	}
	if !linksPattern.MatchString(resumeLower) {
		areas = append(areas, "Add links to GitHub or portfolio")
	}
	return areas
}
