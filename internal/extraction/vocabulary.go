package extraction

// technicalSkills is the fixed vocabulary of technical skill labels matched
// against free text. Entries are lowercase; matched labels are reported in
// title case.
var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "c", "go", "rust",
	"kotlin", "swift", "php", "ruby", "scala", "r", "matlab", "perl", "shell",
	"bash", "powershell", "sql", "html", "css", "sass", "less",

	// Web technologies
	"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
	"spring", "asp.net", "laravel", "symfony", "rails", "next.js", "nuxt.js",
	"graphql", "rest api", "soap", "microservices", "docker", "kubernetes",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite", "cassandra",
	"elasticsearch", "dynamodb", "neo4j", "firebase", "supabase",

	// Cloud and devops
	"aws", "azure", "gcp", "google cloud", "terraform", "ansible", "jenkins",
	"ci/cd", "git", "github", "gitlab", "bitbucket", "jira", "confluence",

	// Data science and ML
	"machine learning", "deep learning", "neural networks", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "jupyter",
	"data analysis", "data visualization", "statistics", "nlp", "computer vision",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin", "ionic",

	// Other
	"linux", "unix", "windows", "agile", "scrum", "kanban", "devops",
	"api development", "web development", "software development", "testing",
	"unit testing", "integration testing", "selenium", "cypress", "jest",
}

// softSkills is the fixed vocabulary of soft skill labels.
var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"time management", "project management", "collaboration", "adaptability",
	"creativity", "analytical", "detail-oriented", "self-motivated", "mentoring",
	"presentation", "negotiation", "customer service", "agile methodology",
}
