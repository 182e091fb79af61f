package roles

import "strings"

// SkillCatalog lists the skills a role requires, grouped the way the
// advisory report presents them.
type SkillCatalog struct {
	CoreSkills        []string `json:"core_skills"`
	Languages         []string `json:"programming_languages"`
	ToolsTechnologies []string `json:"tools_technologies"`
	Concepts          []string `json:"concepts"`
	Description       string   `json:"description"`
}

// All returns every catalog skill as a single list, in category order.
func (c SkillCatalog) All() []string {
	all := make([]string, 0, len(c.CoreSkills)+len(c.Languages)+len(c.ToolsTechnologies)+len(c.Concepts))
	all = append(all, c.CoreSkills...)
	all = append(all, c.Languages...)
	all = append(all, c.ToolsTechnologies...)
	all = append(all, c.Concepts...)
	return all
}

// CatalogFor returns the skill catalog for a role, keyed on substrings of
// the role name so close variants ("Senior Backend Developer") still
// resolve. Unknown roles get a generic catalog.
func CatalogFor(role string) SkillCatalog {
	roleLower := strings.ToLower(role)

	switch {
	case strings.Contains(roleLower, "data scientist"):
		return SkillCatalog{
			CoreSkills:        []string{"Statistics", "Machine Learning", "Data Analysis", "Data Visualization"},
			Languages:         []string{"Python", "R", "SQL"},
			ToolsTechnologies: []string{"Pandas", "NumPy", "Scikit-learn", "Jupyter", "TensorFlow"},
			Concepts:          []string{"Supervised Learning", "Unsupervised Learning", "Feature Engineering"},
			Description:       "Data Scientist - Extract insights from data using statistical and ML methods",
		}
	case strings.Contains(roleLower, "ml engineer"):
		return SkillCatalog{
			CoreSkills:        []string{"Machine Learning", "Deep Learning", "MLOps", "Model Deployment"},
			Languages:         []string{"Python", "C++"},
			ToolsTechnologies: []string{"TensorFlow", "PyTorch", "Docker", "Kubernetes", "AWS"},
			Concepts:          []string{"Neural Networks", "Model Training", "Model Serving", "A/B Testing"},
			Description:       "ML Engineer - Design and deploy machine learning systems at scale",
		}
	case strings.Contains(roleLower, "frontend"):
		return SkillCatalog{
			CoreSkills:        []string{"HTML", "CSS", "JavaScript", "Responsive Design", "UI/UX"},
			Languages:         []string{"JavaScript", "TypeScript"},
			ToolsTechnologies: []string{"React", "Vue.js", "Angular", "Webpack", "npm"},
			Concepts:          []string{"Component Architecture", "State Management", "DOM Manipulation"},
			Description:       "Frontend Developer - Build user interfaces and client-side applications",
		}
	case strings.Contains(roleLower, "backend"):
		return SkillCatalog{
			CoreSkills:        []string{"API Design", "Database Design", "Server Architecture", "Authentication"},
			Languages:         []string{"Python", "Java", "Node.js", "Go"},
			ToolsTechnologies: []string{"Django", "Flask", "Express", "PostgreSQL", "Redis"},
			Concepts:          []string{"REST APIs", "GraphQL", "Microservices", "Caching"},
			Description:       "Backend Developer - Build server-side applications and APIs",
		}
	case strings.Contains(roleLower, "devops"):
		return SkillCatalog{
			CoreSkills:        []string{"CI/CD", "Cloud Platforms", "Containerization", "Infrastructure as Code"},
			Languages:         []string{"Python", "Bash", "Go"},
			ToolsTechnologies: []string{"Docker", "Kubernetes", "Jenkins", "Terraform", "AWS"},
			Concepts:          []string{"Monitoring", "Scripting", "Linux"},
			Description:       "DevOps Engineer - Automate, deploy, and operate infrastructure",
		}
	case strings.Contains(roleLower, "sde"),
		strings.Contains(roleLower, "software"),
		strings.Contains(roleLower, "developer"):
		return SkillCatalog{
			CoreSkills:        []string{"Problem Solving", "Data Structures", "Algorithms", "System Design Basics", "Object-Oriented Programming"},
			Languages:         []string{"Python", "Java", "C++", "JavaScript"},
			ToolsTechnologies: []string{"Git", "Linux", "REST APIs", "Databases (SQL)", "Docker"},
			Concepts:          []string{"Time Complexity", "Space Complexity", "Design Patterns", "Version Control"},
			Description:       "Software Engineer - Build and maintain software applications",
		}
	default:
		return SkillCatalog{
			CoreSkills:        []string{"Problem Solving", "Communication", "Technical Skills"},
			Languages:         []string{"Python", "JavaScript"},
			ToolsTechnologies: []string{"Git", "Linux"},
			Concepts:          []string{"Best Practices", "Industry Standards"},
			Description:       role + " - Professional role requiring technical expertise",
		}
	}
}
