package roles

import "strings"

// roleKeywords pairs a role with the phrases that signal it in a job
// description. Order matters for both classifiers: FirstMatch returns the
// first role with any hit, and BestMatch breaks score ties in favor of the
// earlier entry.
type roleKeywords struct {
	role     string
	keywords []string
}

// classifierTable lists the detectable roles in fixed precedence order.
// Specific roles come before the generic catch-all so that a posting
// mentioning both "backend" and "software engineer" classifies as backend.
var classifierTable = []roleKeywords{
	{"Backend Developer", []string{
		"backend", "back-end", "server", "api developer",
		"rest api", "microservices", "database",
	}},
	{"Frontend Developer", []string{
		"frontend", "front-end", "react", "vue", "angular",
		"ui developer", "javascript developer",
	}},
	{"Data Scientist", []string{
		"data scientist", "data science", "machine learning",
		"data analysis", "statistics",
	}},
	{"ML Engineer", []string{
		"ml engineer", "machine learning engineer", "deep learning",
		"model deployment", "mlops",
	}},
	{"DevOps Engineer", []string{
		"devops", "sre", "site reliability", "cloud engineer", "infrastructure",
	}},
	{"Software Engineer", []string{
		"software engineer", "sde", "swe", "software developer",
		"full stack", "fullstack",
	}},
}

// Classifier picks a target role from job text. Both implementations are
// deterministic keyword matchers over the same fixed role table.
type Classifier interface {
	Classify(jobDescription string) string
}

// FirstMatch returns the first role in table order with any keyword present
// in the job description. It mirrors how the gap analysis picks its target.
type FirstMatch struct {
	// Fallback is returned when no keyword matches; empty means DefaultRole.
	Fallback string
}

// Classify detects the target role, using the fallback when nothing matches.
func (f FirstMatch) Classify(jobDescription string) string {
	jobLower := strings.ToLower(jobDescription)
	for _, entry := range classifierTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(jobLower, keyword) {
				return entry.role
			}
		}
	}
	return fallbackRole(f.Fallback)
}

// BestMatch scores every role by how many of its keywords appear and returns
// the highest scorer. Ties resolve to the earlier role in table order.
type BestMatch struct {
	// Fallback is returned when no keyword matches; empty means DefaultRole.
	Fallback string
}

// Classify detects the target role from the job description, optionally
// using resume text as extra context. Uses the fallback on no hits.
func (b BestMatch) Classify(jobDescription string) string {
	return b.ClassifyWithContext(jobDescription, "")
}

// ClassifyWithContext scores keywords over the job description and resume
// text combined.
func (b BestMatch) ClassifyWithContext(jobDescription, resumeText string) string {
	combined := strings.ToLower(jobDescription + " " + resumeText)

	best := fallbackRole(b.Fallback)
	bestScore := 0
	for _, entry := range classifierTable {
		score := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(combined, keyword) {
				score++
			}
		}
		if score > bestScore {
			best = entry.role
			bestScore = score
		}
	}
	return best
}

func fallbackRole(configured string) string {
	if configured != "" {
		return configured
	}
	return DefaultRole
}

// Names returns the detectable role names in precedence order.
func Names() []string {
	names := make([]string, 0, len(classifierTable))
	for _, entry := range classifierTable {
		names = append(names, entry.role)
	}
	return names
}
