// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// LearningRoadmap bundles the fixed-horizon learning plans. Each horizon is
// assembled independently; the 90-day plan is not an extension of the 30-day.
type LearningRoadmap struct {
	ThirtyDay       Plan   `json:"30_day"`
	SixtyDay        Plan   `json:"60_day"`
	NinetyDay       Plan   `json:"90_day"`
	TargetRole      string `json:"target_role"`
	ExperienceLevel string `json:"experience_level"`
}

// Plan is one time-boxed learning plan made up of ordered phases.
type Plan struct {
	Duration        string   `json:"duration"`
	Phases          []Phase  `json:"phases"`
	TotalProjects   int      `json:"total_projects"`
	FocusAreas      []string `json:"focus_areas"`
	SuccessCriteria string   `json:"success_criteria"`
}

// Phase is a single time-boxed slice of a plan.
type Phase struct {
	Label     string   `json:"label"` // e.g. "Week 1", "Weeks 3-4", "Days 61-90"
	Focus     string   `json:"focus"`
	Skills    []string `json:"skills"`
	Tasks     []string `json:"tasks"`
	Projects  []string `json:"projects,omitempty"`
	Milestone string   `json:"milestone"`
}
