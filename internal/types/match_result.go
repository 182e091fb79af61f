// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult holds the direct resume-vs-job comparison output.
// Matched and missing skills partition the job skill set; extra skills are
// resume skills the job did not ask for. Derived per call, never persisted.
type MatchResult struct {
	MatchScore    float64  `json:"match_score"` // 0-100, rounded to 2 decimals
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`
}

// Recommendations is the rule-based improvement guidance block.
type Recommendations struct {
	Summary            string                 `json:"summary"`
	ResumeChanges      []ResumeChange         `json:"resume_changes"`
	SkillImprovements  []SkillImprovement     `json:"skill_improvements"`
	StrengthenExisting []StrengthenSuggestion `json:"strengthen_existing"`
	GeneralTips        []GeneralTip           `json:"general_tips"`
}

// ResumeChange describes a concrete edit to make to the resume.
type ResumeChange struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// SkillImprovement describes how to close a single missing skill.
type SkillImprovement struct {
	Skill         string `json:"skill"`
	CurrentStatus string `json:"current_status"`
	ActionPlan    string `json:"action_plan"`
	Timeline      string `json:"timeline"`
}

// StrengthenSuggestion describes how to better present a skill already on the resume.
type StrengthenSuggestion struct {
	Skill           string `json:"skill"`
	HowToStrengthen string `json:"how_to_strengthen"`
}

// GeneralTip is a generic resume-writing tip.
type GeneralTip struct {
	Tip         string `json:"tip"`
	Description string `json:"description"`
}

// SkillRecommendation suggests a related skill worth learning alongside a missing one.
type SkillRecommendation struct {
	Skill       string `json:"skill"`
	Reason      string `json:"reason"`
	LearningTip string `json:"learning_tip"`
	Priority    string `json:"priority"`
}

// LearningPath describes how to pick up one specific skill.
type LearningPath struct {
	Skill             string   `json:"skill"`
	RelatedSkills     []string `json:"related_skills"`
	LearningTip       string   `json:"learning_tip"`
	SuggestedProjects []string `json:"suggested_projects"`
}
