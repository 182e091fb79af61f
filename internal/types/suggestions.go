// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SuggestionBundle is the structured output of the suggestion engine:
// concrete skills, projects, topics, certifications, resume edits, and an
// ordered list of immediate steps.
type SuggestionBundle struct {
	SkillsToAdd        []SkillSuggestion   `json:"skills_to_add"`
	ProjectsToBuild    []ProjectSuggestion `json:"projects_to_build"`
	TopicsToLearn      []TopicSuggestion   `json:"topics_to_learn"`
	Certifications     []Certification     `json:"certifications"`
	ResumeImprovements []ResumeImprovement `json:"resume_improvements"`
	ActionableSteps    []ActionStep        `json:"actionable_steps"`
}

// SkillSuggestion is a role-relevant missing skill with a concrete plan.
type SkillSuggestion struct {
	Skill     string `json:"skill"`
	Priority  string `json:"priority"`
	Action    string `json:"action"`
	Timeline  string `json:"timeline"`
	Resources string `json:"resources"`
}

// ProjectSuggestion is a project to build to demonstrate missing skills.
type ProjectSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Complexity  string   `json:"complexity"`
	Timeline    string   `json:"timeline"`
	Specific    bool     `json:"specific,omitempty"` // true when triggered by a named missing skill
}

// TopicSuggestion is a study topic with pointers to resources.
type TopicSuggestion struct {
	Topic     string `json:"topic"`
	Priority  string `json:"priority"`
	Resources string `json:"resources"`
}

// Certification is an optional credential worth considering for the role.
type Certification struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional"`
	Cost     string `json:"cost"`
}

// ResumeImprovement is a targeted edit to a specific resume section.
type ResumeImprovement struct {
	Section string `json:"section"`
	Action  string `json:"action"`
	Example string `json:"example"`
}

// ActionStep is one numbered entry in the immediate action plan.
type ActionStep struct {
	Step      int    `json:"step"`
	Action    string `json:"action"`
	Why       string `json:"why"`
	Timeline  string `json:"timeline"`
	Resources string `json:"resources"`
}
