// Package roles holds the static role taxonomy: per-role requirement
// profiles, classifier keyword tables, and the two role-detection
// strategies. All tables are immutable and loaded once.
package roles

import (
	"strings"

	"github.com/jonathan/careeriq/internal/types"
)

// DefaultRole is the fallback when no keyword matches or a profile lookup
// misses.
const DefaultRole = "Software Engineer"

// Profile describes what a role expects from a candidate, split into broad
// fundamentals and concrete skills, each tiered by priority.
type Profile struct {
	Name         string
	Fundamentals map[string][]string // priority -> fundamentals
	Skills       map[string][]string // priority -> skills
}

// PriorityOrder is the fixed iteration order over priority tiers.
var PriorityOrder = []string{types.PriorityHigh, types.PriorityMedium, types.PriorityLow}

// profiles maps role name to its requirement profile.
var profiles = map[string]Profile{
	"Software Engineer": {
		Name: "Software Engineer",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"Data Structures", "Algorithms", "OOP", "System Design"},
			types.PriorityMedium: {"Database Design", "Operating Systems", "Computer Networks"},
			types.PriorityLow:    {"Software Testing", "Version Control", "CI/CD"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"Programming Languages", "Problem Solving", "Code Quality"},
			types.PriorityMedium: {"API Development", "Database Management", "Git"},
			types.PriorityLow:    {"Documentation", "Code Review", "Agile"},
		},
	},
	"Backend Developer": {
		Name: "Backend Developer",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"API Design", "Database Systems", "System Architecture", "Security"},
			types.PriorityMedium: {"Microservices", "Caching", "Message Queues", "REST/GraphQL"},
			types.PriorityLow:    {"DevOps Basics", "Monitoring", "Logging"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"Backend Frameworks", "Database Optimization", "API Development"},
			types.PriorityMedium: {"Authentication", "Authorization", "API Security"},
			types.PriorityLow:    {"Documentation", "Testing", "Performance Tuning"},
		},
	},
	"Frontend Developer": {
		Name: "Frontend Developer",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"JavaScript", "HTML/CSS", "React/Vue/Angular", "Responsive Design"},
			types.PriorityMedium: {"State Management", "Web Performance", "Browser APIs"},
			types.PriorityLow:    {"Testing", "Accessibility", "SEO"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"Frontend Frameworks", "UI/UX", "JavaScript ES6+"},
			types.PriorityMedium: {"Build Tools", "Package Managers", "CSS Preprocessors"},
			types.PriorityLow:    {"Progressive Web Apps", "WebAssembly", "Design Systems"},
		},
	},
	"Data Scientist": {
		Name: "Data Scientist",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"Statistics", "Machine Learning", "Data Analysis", "Python/R"},
			types.PriorityMedium: {"Data Visualization", "SQL", "Data Cleaning", "Feature Engineering"},
			types.PriorityLow:    {"Big Data Tools", "Cloud Platforms", "MLOps"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"Pandas", "NumPy", "Scikit-learn", "Jupyter"},
			types.PriorityMedium: {"TensorFlow/PyTorch", "Data Visualization", "SQL"},
			types.PriorityLow:    {"Spark", "Docker", "Kubernetes"},
		},
	},
	"ML Engineer": {
		Name: "ML Engineer",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"Machine Learning", "Deep Learning", "Model Deployment", "Python"},
			types.PriorityMedium: {"MLOps", "Model Optimization", "Data Pipelines"},
			types.PriorityLow:    {"Cloud ML Services", "Containerization", "Monitoring"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"TensorFlow", "PyTorch", "Model Training", "Feature Engineering"},
			types.PriorityMedium: {"Model Deployment", "MLOps", "Data Processing"},
			types.PriorityLow:    {"Kubernetes", "Monitoring", "A/B Testing"},
		},
	},
	"DevOps Engineer": {
		Name: "DevOps Engineer",
		Fundamentals: map[string][]string{
			types.PriorityHigh:   {"CI/CD", "Cloud Platforms", "Containerization", "Infrastructure as Code"},
			types.PriorityMedium: {"Monitoring", "Scripting", "Networking"},
			types.PriorityLow:    {"Security Basics", "Cost Optimization", "Incident Response"},
		},
		Skills: map[string][]string{
			types.PriorityHigh:   {"Docker", "Kubernetes", "Terraform", "AWS"},
			types.PriorityMedium: {"Jenkins", "Linux", "Ansible"},
			types.PriorityLow:    {"Prometheus", "Grafana", "Helm"},
		},
	},
}

// ProfileFor returns the profile for a role, falling back to the default
// profile for unknown role names. It never fails.
func ProfileFor(role string) Profile {
	if profile, ok := profiles[role]; ok {
		return profile
	}
	return profiles[DefaultRole]
}

// ContainsTerm reports whether term appears, case-insensitively, anywhere in
// the profile's fundamentals or skills. Used to elevate the priority of
// missing job skills that the role itself calls out.
func (p Profile) ContainsTerm(term string) bool {
	needle := strings.ToLower(term)
	for _, tier := range p.Fundamentals {
		for _, entry := range tier {
			if strings.Contains(strings.ToLower(entry), needle) {
				return true
			}
		}
	}
	for _, tier := range p.Skills {
		for _, entry := range tier {
			if strings.Contains(strings.ToLower(entry), needle) {
				return true
			}
		}
	}
	return false
}
