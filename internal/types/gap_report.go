// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority tiers for role fundamentals and skills.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// GapReport is the deep resume analysis: strengths, weaknesses, missing
// fundamentals, readiness, structure, and experience level for a target role.
type GapReport struct {
	TargetRole          string               `json:"target_role"`
	ExperienceLevel     ExperienceLevel      `json:"experience_level"`
	Strengths           Strengths            `json:"strengths"`
	Weaknesses          Weaknesses           `json:"weaknesses"`
	MissingFundamentals []MissingFundamental `json:"missing_fundamentals"`
	ResumeStructure     StructureAssessment  `json:"resume_structure"`
	RoleReadiness       ReadinessScore       `json:"role_readiness_score"`
	Confidence          float64              `json:"confidence"`
}

// ExperienceLevel classifies the candidate's seniority.
// Level is one of fresher, junior, mid, senior.
type ExperienceLevel struct {
	Level       string `json:"level"`
	Years       int    `json:"years_experience"`
	Description string `json:"description"`
}

// Strengths collects what the resume already demonstrates for the role.
type Strengths struct {
	TechnicalSkills      []SkillStrength    `json:"technical_skills"`
	Fundamentals         []FundamentalMatch `json:"fundamentals"`
	ExperienceHighlights []string           `json:"experience_highlights"`
	Projects             []ProjectHighlight `json:"projects"`
}

// FundamentalMatch is a role fundamental found in the resume, with the
// surrounding text snippet as evidence.
type FundamentalMatch struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Evidence string `json:"evidence"`
}

// SkillStrength is a role skill the resume demonstrates.
type SkillStrength struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
}

// ProjectHighlight is a project entry lifted from the resume's projects section.
type ProjectHighlight struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Weaknesses collects the gaps between the resume and the role requirements.
type Weaknesses struct {
	MissingFundamentals []MissingRequirement `json:"missing_fundamentals"`
	MissingSkills       []MissingSkill       `json:"missing_skills"`
	ImprovementAreas    []string             `json:"improvement_areas"`
}

// MissingRequirement is a role fundamental absent from the resume.
// Importance is Critical, Important, or Nice to have.
type MissingRequirement struct {
	Skill      string `json:"skill"`
	Priority   string `json:"priority"`
	Importance string `json:"importance"`
}

// MissingSkill is a job-posted skill absent from the resume.
type MissingSkill struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
}

// MissingFundamental is a role fundamental absent from the resume, with
// impact and an explanation of why it matters for the role.
type MissingFundamental struct {
	Skill        string `json:"skill"`
	Priority     string `json:"priority"`
	Impact       string `json:"impact"`
	WhyImportant string `json:"why_important"`
}

// ReadinessScore is the composite 0-100 role readiness heuristic with its
// full additive breakdown.
type ReadinessScore struct {
	Score     float64            `json:"score"`
	Level     string             `json:"level"`
	Breakdown ReadinessBreakdown `json:"breakdown"`
}

// ReadinessBreakdown itemizes how the readiness score was computed.
// Penalty fields are negative.
type ReadinessBreakdown struct {
	Base            int `json:"base"`
	StrengthBonus   int `json:"strength_bonus"`
	SkillBonus      int `json:"skill_bonus"`
	CriticalPenalty int `json:"critical_penalty"`
	MediumPenalty   int `json:"medium_penalty"`
}

// StructureAssessment scores the presence of expected resume sections.
type StructureAssessment struct {
	Score           float64         `json:"score"` // 0-100, rounded to 1 decimal
	SectionsPresent map[string]bool `json:"sections_present"`
	Issues          []string        `json:"issues"`
	Quality         string          `json:"quality"`
}
