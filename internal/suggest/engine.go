// Package suggest turns a gap analysis into concrete, time-boxed guidance:
// skills to add, projects to build, topics to study, and immediate steps.
package suggest

import (
	"strings"

	"github.com/jonathan/careeriq/internal/gap"
	"github.com/jonathan/careeriq/internal/types"
)

const (
	maxSkillSuggestions = 10
	maxProjects         = 5
	maxTopics           = 8
	maxCertifications   = 3
	maxSteps            = 5
)

// Engine generates suggestion bundles. Stateless and safe for concurrent
// use; all guidance comes from fixed tables keyed by role and level.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Generate builds the full suggestion bundle from the gap report and the
// job skills missing from the resume.
func (e *Engine) Generate(report *types.GapReport, missingSkills []string) *types.SuggestionBundle {
	role := report.TargetRole
	level := report.ExperienceLevel.Level

	return &types.SuggestionBundle{
		SkillsToAdd:        skillsToAdd(missingSkills, role, level),
		ProjectsToBuild:    projectsToBuild(role, level, missingSkills),
		TopicsToLearn:      topicsToLearn(role, missingSkills),
		Certifications:     certifications(role),
		ResumeImprovements: resumeImprovements(report),
		ActionableSteps:    actionableSteps(report),
	}
}

// roleSkillPriorities ranks the skills each role should add first.
var roleSkillPriorities = map[string]map[string][]string{
	"Software Engineer": {
		types.PriorityHigh:   {"System Design", "DSA", "OOP", "Git"},
		types.PriorityMedium: {"REST APIs", "Database Design", "Testing"},
		types.PriorityLow:    {"Docker", "CI/CD", "Cloud Basics"},
	},
	"Backend Developer": {
		types.PriorityHigh:   {"REST/GraphQL APIs", "Database Optimization", "Authentication"},
		types.PriorityMedium: {"Microservices", "Caching", "Message Queues"},
		types.PriorityLow:    {"Kubernetes", "Monitoring", "API Security"},
	},
	"Frontend Developer": {
		types.PriorityHigh:   {"React/Vue/Angular", "JavaScript ES6+", "State Management"},
		types.PriorityMedium: {"Responsive Design", "Web Performance", "Build Tools"},
		types.PriorityLow:    {"PWA", "WebAssembly", "Testing Frameworks"},
	},
	"Data Scientist": {
		types.PriorityHigh:   {"Pandas", "NumPy", "Scikit-learn", "SQL"},
		types.PriorityMedium: {"TensorFlow/PyTorch", "Data Visualization", "Statistics"},
		types.PriorityLow:    {"MLOps", "Big Data Tools", "Cloud ML"},
	},
}

var priorityOrder = []string{types.PriorityHigh, types.PriorityMedium, types.PriorityLow}

func skillsToAdd(missingSkills []string, role, level string) []types.SkillSuggestion {
	roleSkills, ok := roleSkillPriorities[role]
	if !ok {
		roleSkills = roleSkillPriorities["Software Engineer"]
	}

	missing := make(map[string]bool, len(missingSkills))
	for _, skill := range missingSkills {
		missing[skill] = true
	}

	var suggestions []types.SkillSuggestion
	for _, priority := range priorityOrder {
		for _, skill := range roleSkills[priority] {
			if !missing[skill] {
				continue
			}
			suggestions = append(suggestions, types.SkillSuggestion{
				Skill:     skill,
				Priority:  priority,
				Action:    skillAction(skill),
				Timeline:  skillTimeline(level),
				Resources: skillResources(skill),
			})
		}
	}

	if len(suggestions) > maxSkillSuggestions {
		suggestions = suggestions[:maxSkillSuggestions]
	}
	return suggestions
}

// projectTemplates lists portfolio projects per role, ordered by value.
var projectTemplates = map[string][]types.ProjectSuggestion{
	"Software Engineer": {
		{
			Name:        "REST API Backend",
			Description: "Build a REST API with authentication and database",
			Skills:      []string{"REST APIs", "Authentication", "Database"},
			Complexity:  "medium",
			Timeline:    "2-3 weeks",
		},
		{
			Name:        "Full-Stack Web App",
			Description: "Create a full-stack application with frontend and backend",
			Skills:      []string{"Frontend", "Backend", "Database"},
			Complexity:  "high",
			Timeline:    "4-6 weeks",
		},
		{
			Name:        "System Design Project",
			Description: "Design and implement a scalable system (e.g., URL shortener)",
			Skills:      []string{"System Design", "Scalability", "Architecture"},
			Complexity:  "high",
			Timeline:    "3-4 weeks",
		},
	},
	"Backend Developer": {
		{
			Name:        "Microservices API",
			Description: "Build a microservices architecture with 2-3 services",
			Skills:      []string{"Microservices", "API Design", "Docker"},
			Complexity:  "high",
			Timeline:    "3-4 weeks",
		},
		{
			Name:        "Authentication Service",
			Description: "Implement JWT-based authentication with refresh tokens",
			Skills:      []string{"Authentication", "Security", "JWT"},
			Complexity:  "medium",
			Timeline:    "2 weeks",
		},
	},
	"Frontend Developer": {
		{
			Name:        "React Dashboard",
			Description: "Build a responsive dashboard with charts and data visualization",
			Skills:      []string{"React", "State Management", "API Integration"},
			Complexity:  "medium",
			Timeline:    "2-3 weeks",
		},
		{
			Name:        "E-commerce Frontend",
			Description: "Create a modern e-commerce UI with cart and checkout",
			Skills:      []string{"React/Vue", "State Management", "Responsive Design"},
			Complexity:  "high",
			Timeline:    "3-4 weeks",
		},
	},
	"Data Scientist": {
		{
			Name:        "ML Prediction Model",
			Description: "Build and deploy a machine learning prediction model",
			Skills:      []string{"Machine Learning", "Python", "Model Deployment"},
			Complexity:  "medium",
			Timeline:    "3 weeks",
		},
		{
			Name:        "Data Analysis Dashboard",
			Description: "Analyze a dataset and create visualizations",
			Skills:      []string{"Data Analysis", "Visualization", "Pandas"},
			Complexity:  "medium",
			Timeline:    "2 weeks",
		},
	},
}

func projectsToBuild(role, level string, missingSkills []string) []types.ProjectSuggestion {
	templates, ok := projectTemplates[role]
	if !ok {
		templates = projectTemplates["Software Engineer"]
	}

	// Freshers and juniors get the lighter projects.
	var projects []types.ProjectSuggestion
	for _, project := range templates {
		if (level == gap.LevelFresher || level == gap.LevelJunior) && project.Complexity == "high" {
			continue
		}
		projects = append(projects, project)
	}

	var custom []types.ProjectSuggestion
	for _, skill := range missingSkills {
		switch skill {
		case "REST APIs", "Rest Apis":
			custom = append(custom, types.ProjectSuggestion{
				Name:        "REST API Project",
				Description: "Build 1 backend project using REST APIs and authentication",
				Skills:      []string{"REST APIs", "Authentication"},
				Complexity:  "medium",
				Timeline:    "2 weeks",
				Specific:    true,
			})
		case "System Design":
			custom = append(custom, types.ProjectSuggestion{
				Name:        "System Design Practice",
				Description: "Design and document a scalable system (e.g., Twitter clone)",
				Skills:      []string{"System Design", "Architecture"},
				Complexity:  "high",
				Timeline:    "2-3 weeks",
				Specific:    true,
			})
		}
	}

	combined := append(custom, projects...)
	if len(combined) > maxProjects {
		combined = combined[:maxProjects]
	}
	return combined
}

// roleTopics lists the study topics per role, most important first.
var roleTopics = map[string][]types.TopicSuggestion{
	"Software Engineer": {
		{Topic: "Data Structures & Algorithms", Priority: types.PriorityHigh, Resources: "LeetCode, GeeksforGeeks"},
		{Topic: "System Design Fundamentals", Priority: types.PriorityHigh, Resources: "System Design Primer, Grokking"},
		{Topic: "OOP Principles", Priority: types.PriorityMedium, Resources: "FreeCodeCamp, MDN"},
		{Topic: "Database Design", Priority: types.PriorityMedium, Resources: "SQL Tutorial, Database Design Course"},
	},
	"Backend Developer": {
		{Topic: "API Design Best Practices", Priority: types.PriorityHigh, Resources: "REST API Tutorial"},
		{Topic: "Database Optimization", Priority: types.PriorityHigh, Resources: "SQL Performance Guide"},
		{Topic: "Microservices Architecture", Priority: types.PriorityMedium, Resources: "Microservices Patterns"},
		{Topic: "Authentication & Security", Priority: types.PriorityMedium, Resources: "OWASP Guidelines"},
	},
	"Frontend Developer": {
		{Topic: "JavaScript ES6+ Features", Priority: types.PriorityHigh, Resources: "MDN Web Docs, JavaScript.info"},
		{Topic: "React/Vue State Management", Priority: types.PriorityHigh, Resources: "Official Docs"},
		{Topic: "Web Performance Optimization", Priority: types.PriorityMedium, Resources: "Web.dev Performance"},
		{Topic: "Responsive Design Patterns", Priority: types.PriorityMedium, Resources: "CSS-Tricks, MDN"},
	},
	"Data Scientist": {
		{Topic: "Statistics Fundamentals", Priority: types.PriorityHigh, Resources: "Khan Academy, Coursera"},
		{Topic: "Machine Learning Basics", Priority: types.PriorityHigh, Resources: "Andrew Ng's Course"},
		{Topic: "Data Visualization", Priority: types.PriorityMedium, Resources: "Matplotlib, Seaborn Docs"},
		{Topic: "Feature Engineering", Priority: types.PriorityMedium, Resources: "Kaggle Learn"},
	},
}

func topicsToLearn(role string, missingSkills []string) []types.TopicSuggestion {
	base, ok := roleTopics[role]
	if !ok {
		base = roleTopics["Software Engineer"]
	}
	topics := make([]types.TopicSuggestion, len(base))
	copy(topics, base)

	considered := missingSkills
	if len(considered) > 5 {
		considered = considered[:5]
	}
	for _, skill := range considered {
		skillLower := strings.ToLower(skill)
		covered := false
		for _, topic := range topics {
			if strings.Contains(skillLower, strings.ToLower(topic.Topic)) {
				covered = true
				break
			}
		}
		if !covered {
			topics = append(topics, types.TopicSuggestion{
				Topic:     skill,
				Priority:  types.PriorityMedium,
				Resources: "Online courses and documentation",
			})
		}
	}

	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

var roleCertifications = map[string][]types.Certification{
	"Software Engineer": {
		{Name: "AWS Certified Solutions Architect", Optional: true, Cost: "Paid"},
		{Name: "Google Cloud Professional", Optional: true, Cost: "Paid"},
		{Name: "FreeCodeCamp Certifications", Optional: true, Cost: "Free"},
	},
	"Backend Developer": {
		{Name: "REST API Design", Optional: true, Cost: "Free (Coursera)"},
		{Name: "Database Design", Optional: true, Cost: "Free (edX)"},
	},
	"Data Scientist": {
		{Name: "Google Data Analytics Certificate", Optional: true, Cost: "Paid (Coursera)"},
		{Name: "Kaggle Micro-Courses", Optional: true, Cost: "Free"},
	},
}

func certifications(role string) []types.Certification {
	certs := roleCertifications[role]
	if len(certs) > maxCertifications {
		certs = certs[:maxCertifications]
	}
	return certs
}

func resumeImprovements(report *types.GapReport) []types.ResumeImprovement {
	var improvements []types.ResumeImprovement
	structure := report.ResumeStructure

	if !structure.SectionsPresent["summary"] {
		improvements = append(improvements, types.ResumeImprovement{
			Section: "Summary",
			Action:  "Add a 2-3 line professional summary highlighting your key strengths",
			Example: "Experienced software engineer with expertise in...",
		})
	}
	if structure.Score < 70 {
		improvements = append(improvements, types.ResumeImprovement{
			Section: "Structure",
			Action:  "Ensure all sections are present: Summary, Experience, Education, Skills, Projects",
			Example: "Organize resume into clear sections",
		})
	}
	if len(report.Strengths.ExperienceHighlights) == 0 {
		improvements = append(improvements, types.ResumeImprovement{
			Section: "Experience",
			Action:  "Add measurable impact instead of responsibilities. Use numbers and metrics.",
			Example: "'Improved performance by 30%' instead of 'Worked on performance optimization'",
		})
	}
	return improvements
}

func actionableSteps(report *types.GapReport) []types.ActionStep {
	var steps []types.ActionStep

	count := 0
	for _, fundamental := range report.MissingFundamentals {
		if fundamental.Priority != types.PriorityHigh {
			continue
		}
		count++
		steps = append(steps, types.ActionStep{
			Step:      count,
			Action:    "Learn " + fundamental.Skill,
			Why:       fundamental.WhyImportant,
			Timeline:  "2-3 weeks",
			Resources: skillResources(fundamental.Skill),
		})
		if count == 3 {
			break
		}
	}

	if report.ResumeStructure.Score < 80 {
		steps = append(steps, types.ActionStep{
			Step:      len(steps) + 1,
			Action:    "Improve resume structure",
			Why:       "Better structure increases readability and ATS compatibility",
			Timeline:  "1 week",
			Resources: "Resume templates and guides",
		})
	}

	if len(steps) > maxSteps {
		steps = steps[:maxSteps]
	}
	return steps
}

// skillActions maps skill keys to concrete learning actions, walked in order.
var skillActions = []struct{ key, action string }{
	{"System Design", "Study system design patterns and practice designing 2-3 systems"},
	{"DSA", "Solve 50+ LeetCode problems focusing on arrays, strings, and trees"},
	{"REST APIs", "Build 1 backend project using REST APIs and authentication"},
	{"React", "Complete React official tutorial and build 2-3 projects"},
	{"Machine Learning", "Complete Andrew Ng's ML course and build 2 prediction models"},
}

func skillAction(skill string) string {
	skillLower := strings.ToLower(skill)
	for _, entry := range skillActions {
		if strings.Contains(skillLower, strings.ToLower(entry.key)) {
			return entry.action
		}
	}
	return "Take an online course on " + skill + " and build a small project"
}

func skillTimeline(level string) string {
	switch level {
	case gap.LevelFresher:
		return "3-4 weeks"
	case gap.LevelJunior:
		return "2-3 weeks"
	default:
		return "1-2 weeks"
	}
}

var skillResourceTable = []struct{ key, resources string }{
	{"System Design", "System Design Primer, Grokking System Design"},
	{"DSA", "LeetCode, GeeksforGeeks, HackerRank"},
	{"REST APIs", "REST API Tutorial, Postman Learning Center"},
	{"React", "React Official Docs, FreeCodeCamp"},
	{"Machine Learning", "Coursera ML Course, Fast.ai, Kaggle Learn"},
}

func skillResources(skill string) string {
	skillLower := strings.ToLower(skill)
	for _, entry := range skillResourceTable {
		if strings.Contains(skillLower, strings.ToLower(entry.key)) {
			return entry.resources
		}
	}
	return "Online courses, official documentation, and practice projects"
}
