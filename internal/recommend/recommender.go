// Package recommend produces related-skill recommendations from a static
// co-occurrence table, the way professional networks suggest adjacent
// skills.
package recommend

import (
	"strings"

	"github.com/jonathan/careeriq/internal/types"
)

const (
	maxMissingConsidered = 10
	maxRelatedPerSkill   = 3
	maxRecommendations   = 10
	highPriorityCount    = 5
)

// relationship pairs a skill key with the skills commonly used alongside it.
// The table is ordered: lookups walk it top to bottom so results are
// deterministic.
type relationship struct {
	key     string
	related []string
}

var skillRelationships = []relationship{
	// Programming languages
	{"python", []string{"Django", "Flask", "FastAPI", "NumPy", "Pandas", "TensorFlow", "PyTorch"}},
	{"java", []string{"Spring Boot", "Hibernate", "Maven", "Gradle", "JUnit", "Apache Kafka"}},
	{"javascript", []string{"React", "Node.js", "Express", "TypeScript", "Vue.js", "Angular"}},
	{"c++", []string{"STL", "Boost", "Qt", "OpenCV", "CMake"}},
	{"c#", []string{".NET", "ASP.NET", "Entity Framework", "Xamarin", "Unity"}},

	// Web technologies
	{"react", []string{"Redux", "Next.js", "React Router", "Material-UI", "Styled Components"}},
	{"angular", []string{"RxJS", "TypeScript", "Angular Material", "NgRx"}},
	{"vue", []string{"Vuex", "Nuxt.js", "Vuetify", "Pinia"}},
	{"node.js", []string{"Express", "MongoDB", "Socket.io", "JWT", "REST API"}},

	// Databases
	{"mysql", []string{"PostgreSQL", "MongoDB", "Redis", "Database Design", "SQL Optimization"}},
	{"mongodb", []string{"Mongoose", "NoSQL", "Database Design", "Indexing"}},
	{"postgresql", []string{"SQL", "Database Administration", "Performance Tuning"}},

	// Cloud and DevOps
	{"aws", []string{"EC2", "S3", "Lambda", "Docker", "Kubernetes", "Terraform", "CI/CD"}},
	{"docker", []string{"Kubernetes", "Docker Compose", "Container Orchestration", "CI/CD"}},
	{"kubernetes", []string{"Helm", "Docker", "Microservices", "Cloud Native"}},
	{"git", []string{"GitHub", "GitLab", "CI/CD", "Version Control", "Code Review"}},

	// Data science and ML
	{"machine learning", []string{"Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn", "Data Analysis"}},
	{"data science", []string{"Python", "Pandas", "NumPy", "Matplotlib", "Jupyter", "SQL"}},
	{"tensorflow", []string{"Keras", "Deep Learning", "Neural Networks", "Computer Vision"}},
	{"pytorch", []string{"Deep Learning", "Neural Networks", "Research", "Computer Vision"}},

	// Mobile
	{"android", []string{"Kotlin", "Java", "Material Design", "Firebase", "REST API"}},
	{"ios", []string{"Swift", "SwiftUI", "UIKit", "Core Data", "Xcode"}},
	{"react native", []string{"JavaScript", "Redux", "Mobile Development", "Firebase"}},

	// Testing
	{"testing", []string{"JUnit", "Jest", "Selenium", "Cypress", "Unit Testing", "Integration Testing"}},
	{"selenium", []string{"WebDriver", "Test Automation", "QA", "Python", "Java"}},
}

var learningResources = map[string]string{
	"python":           "Try: Python for Everybody (Coursera) or Automate the Boring Stuff",
	"javascript":       "Try: JavaScript.info or freeCodeCamp's JavaScript course",
	"react":            "Try: React Official Tutorial or The Complete React Developer Course",
	"aws":              "Try: AWS Certified Solutions Architect course on Udemy",
	"docker":           "Try: Docker & Kubernetes: The Practical Guide on Udemy",
	"machine learning": "Try: Machine Learning by Andrew Ng (Coursera) or Fast.ai",
	"data science":     "Try: Data Science Specialization (Coursera) or Kaggle Learn",
}

const defaultLearningTip = "Start with official documentation and build a small project to practice."

// Recommender suggests related skills worth learning next. Stateless and
// safe for concurrent use.
type Recommender struct{}

// NewRecommender creates a Recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// RecommendSkills maps missing skills to related-skill recommendations. At
// most the first 10 missing skills are considered, each contributing up to 3
// related skills, de-duplicated, capped at 10 total. The first 5
// recommendations are high priority, the rest medium.
func (r *Recommender) RecommendSkills(missingSkills []string) []types.SkillRecommendation {
	recommendations := make([]types.SkillRecommendation, 0, maxRecommendations)
	seen := make(map[string]bool)

	considered := missingSkills
	if len(considered) > maxMissingConsidered {
		considered = considered[:maxMissingConsidered]
	}

	for _, skill := range considered {
		skillLower := strings.ToLower(skill)

		var related []string
		for _, rel := range skillRelationships {
			if strings.Contains(skillLower, rel.key) || strings.Contains(rel.key, skillLower) {
				related = append(related, rel.related...)
			}
		}
		if len(related) == 0 {
			related = partialMatches(skillLower)
		}

		if len(related) > maxRelatedPerSkill {
			related = related[:maxRelatedPerSkill]
		}
		for _, relatedSkill := range related {
			if seen[relatedSkill] {
				continue
			}
			seen[relatedSkill] = true

			priority := types.PriorityMedium
			if len(recommendations) < highPriorityCount {
				priority = types.PriorityHigh
			}
			recommendations = append(recommendations, types.SkillRecommendation{
				Skill:       relatedSkill,
				Reason:      "Often used together with " + skill,
				LearningTip: learningTip(relatedSkill),
				Priority:    priority,
			})
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// partialMatches falls back to word-level overlap between the skill and the
// relationship keys.
func partialMatches(skillLower string) []string {
	var related []string
	skillWords := strings.Fields(skillLower)
	for _, rel := range skillRelationships {
		matched := false
		for _, word := range strings.Fields(rel.key) {
			if strings.Contains(skillLower, word) {
				matched = true
				break
			}
		}
		if !matched {
			for _, word := range skillWords {
				if strings.Contains(rel.key, word) {
					matched = true
					break
				}
			}
		}
		if matched {
			related = append(related, rel.related...)
		}
	}
	return related
}

// GetLearningPath returns the related skills, a learning tip, and project
// ideas for one skill.
func (r *Recommender) GetLearningPath(skill string) types.LearningPath {
	skillLower := strings.ToLower(skill)

	var related []string
	for _, rel := range skillRelationships {
		if strings.Contains(skillLower, rel.key) {
			related = rel.related
			break
		}
	}
	if len(related) > 5 {
		related = related[:5]
	}

	tip, ok := learningResources[skillLower]
	if !ok {
		tip = "Start with the official documentation and build a practical project."
	}

	return types.LearningPath{
		Skill:             skill,
		RelatedSkills:     related,
		LearningTip:       tip,
		SuggestedProjects: suggestedProjects(skillLower),
	}
}

func learningTip(skill string) string {
	if tip, ok := learningResources[strings.ToLower(skill)]; ok {
		return tip
	}
	return defaultLearningTip
}

// projectIdeas maps skill keys to starter project ideas, walked in order.
var projectIdeas = []relationship{
	{"python", []string{"Build a web scraper", "Create a REST API", "Build a data analysis dashboard"}},
	{"javascript", []string{"Build a todo app", "Create a weather app", "Build a calculator"}},
	{"react", []string{"Build a portfolio website", "Create a blog app", "Build a task manager"}},
	{"aws", []string{"Deploy a static website", "Set up a CI/CD pipeline", "Create a serverless function"}},
	{"docker", []string{"Containerize a web app", "Set up a multi-container app", "Deploy with Docker Compose"}},
	{"machine learning", []string{"Predict house prices", "Image classifier", "Sentiment analysis"}},
	{"data science", []string{"Analyze a dataset", "Create visualizations", "Build a dashboard"}},
}

func suggestedProjects(skillLower string) []string {
	for _, idea := range projectIdeas {
		if strings.Contains(skillLower, idea.key) {
			return idea.related
		}
	}
	return []string{"Build a small project", "Follow a tutorial", "Contribute to open source"}
}
