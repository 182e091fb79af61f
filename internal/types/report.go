// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// AnalysisReport is the full per-request response assembled by the
// orchestrator. Advisory fields are nil when no provider produced a usable
// payload; rule-based fields are always populated.
type AnalysisReport struct {
	RequestID string `json:"request_id"`

	MatchScore    float64  `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`

	Recommendations      Recommendations       `json:"recommendations"`
	SkillRecommendations []SkillRecommendation `json:"skill_recommendations"`

	ResumeSkillCount  int `json:"resume_skill_count"`
	JobSkillCount     int `json:"job_skill_count"`
	MatchedSkillCount int `json:"matched_skill_count"`

	AdvancedAnalysis *GapReport        `json:"advanced_analysis"`
	SmartSuggestions *SuggestionBundle `json:"smart_suggestions"`
	LearningRoadmap  *LearningRoadmap  `json:"learning_roadmap"`
	RoleAnalysis     *RoleAnalysis     `json:"role_analysis"`

	AIInsights        json.RawMessage `json:"ai_insights,omitempty"`
	AISkillAdvice     json.RawMessage `json:"ai_skill_advice,omitempty"`
	AISuggestions     json.RawMessage `json:"ai_suggestions,omitempty"`
	AIRoadmap         json.RawMessage `json:"ai_roadmap,omitempty"`
	ResumeImprovement json.RawMessage `json:"resume_improvement,omitempty"`
	AIEnabled         bool            `json:"ai_enabled"`
}

// RoleAnalysis reports coverage of role-required skills by the resume.
type RoleAnalysis struct {
	TargetRole         string           `json:"target_role"`
	SkillsYouHave      []string         `json:"skills_you_have"`
	SkillsToImprove    []SkillGapBridge `json:"skills_to_improve"`
	SkillsToLearn      []string         `json:"skills_to_learn"`
	TotalRequired      int              `json:"total_required"`
	TotalYouHave       int              `json:"total_you_have"`
	CoveragePercentage float64          `json:"coverage_percentage"`
}

// SkillGapBridge links a weaker resume skill to the stronger role requirement it maps to.
type SkillGapBridge struct {
	Current string `json:"current"`
	Target  string `json:"target"`
	Gap     string `json:"gap"`
}
