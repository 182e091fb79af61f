package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careeriq/internal/gap"
	"github.com/jonathan/careeriq/internal/types"
)

func gapReport(role, level string) *types.GapReport {
	return &types.GapReport{
		TargetRole:      role,
		ExperienceLevel: types.ExperienceLevel{Level: level},
		ResumeStructure: types.StructureAssessment{
			Score:           100,
			SectionsPresent: map[string]bool{"summary": true},
		},
		Strengths: types.Strengths{
			ExperienceHighlights: []string{"Improved throughput by 25%"},
		},
	}
}

func TestSkillsToAdd_RolePriorityOrder(t *testing.T) {
	report := gapReport("Backend Developer", gap.LevelMid)
	missing := []string{"Kubernetes", "Caching", "Authentication", "Microservices"}

	bundle := NewEngine().Generate(report, missing)

	require.Len(t, bundle.SkillsToAdd, 4)
	assert.Equal(t, "Authentication", bundle.SkillsToAdd[0].Skill)
	assert.Equal(t, types.PriorityHigh, bundle.SkillsToAdd[0].Priority)
	assert.Equal(t, "Microservices", bundle.SkillsToAdd[1].Skill)
	assert.Equal(t, "Caching", bundle.SkillsToAdd[2].Skill)
	assert.Equal(t, types.PriorityMedium, bundle.SkillsToAdd[2].Priority)
	assert.Equal(t, "Kubernetes", bundle.SkillsToAdd[3].Skill)
	assert.Equal(t, types.PriorityLow, bundle.SkillsToAdd[3].Priority)
}

func TestSkillsToAdd_TimelineScalesWithLevel(t *testing.T) {
	missing := []string{"Git"}

	fresher := NewEngine().Generate(gapReport("Software Engineer", gap.LevelFresher), missing)
	junior := NewEngine().Generate(gapReport("Software Engineer", gap.LevelJunior), missing)
	senior := NewEngine().Generate(gapReport("Software Engineer", gap.LevelSenior), missing)

	require.Len(t, fresher.SkillsToAdd, 1)
	assert.Equal(t, "3-4 weeks", fresher.SkillsToAdd[0].Timeline)
	assert.Equal(t, "2-3 weeks", junior.SkillsToAdd[0].Timeline)
	assert.Equal(t, "1-2 weeks", senior.SkillsToAdd[0].Timeline)
}

func TestSkillsToAdd_UnknownRoleUsesGenericTable(t *testing.T) {
	report := gapReport("Solutions Architect", gap.LevelMid)

	bundle := NewEngine().Generate(report, []string{"Git", "Docker"})

	require.Len(t, bundle.SkillsToAdd, 2)
	assert.Equal(t, "Git", bundle.SkillsToAdd[0].Skill)
	assert.Equal(t, types.PriorityHigh, bundle.SkillsToAdd[0].Priority)
	assert.Equal(t, "Docker", bundle.SkillsToAdd[1].Skill)
	assert.Equal(t, types.PriorityLow, bundle.SkillsToAdd[1].Priority)
}

func TestProjectsToBuild_JuniorsSkipHighComplexity(t *testing.T) {
	fresher := NewEngine().Generate(gapReport("Software Engineer", gap.LevelFresher), nil)
	senior := NewEngine().Generate(gapReport("Software Engineer", gap.LevelSenior), nil)

	require.Len(t, fresher.ProjectsToBuild, 1)
	assert.Equal(t, "REST API Backend", fresher.ProjectsToBuild[0].Name)

	assert.Len(t, senior.ProjectsToBuild, 3)
}

func TestProjectsToBuild_MissingSkillsAddSpecificProjects(t *testing.T) {
	report := gapReport("Software Engineer", gap.LevelSenior)

	bundle := NewEngine().Generate(report, []string{"Rest Apis", "System Design"})

	require.Len(t, bundle.ProjectsToBuild, maxProjects)
	assert.Equal(t, "REST API Project", bundle.ProjectsToBuild[0].Name)
	assert.True(t, bundle.ProjectsToBuild[0].Specific)
	assert.Equal(t, "System Design Practice", bundle.ProjectsToBuild[1].Name)
	assert.True(t, bundle.ProjectsToBuild[1].Specific)
	assert.False(t, bundle.ProjectsToBuild[2].Specific)
}

func TestTopicsToLearn_UncoveredSkillsAppended(t *testing.T) {
	report := gapReport("Backend Developer", gap.LevelMid)

	bundle := NewEngine().Generate(report, []string{"Graphql"})

	require.Len(t, bundle.TopicsToLearn, 5)
	last := bundle.TopicsToLearn[4]
	assert.Equal(t, "Graphql", last.Topic)
	assert.Equal(t, types.PriorityMedium, last.Priority)
	assert.Equal(t, "Online courses and documentation", last.Resources)
}

func TestTopicsToLearn_CappedAtEight(t *testing.T) {
	report := gapReport("Backend Developer", gap.LevelMid)
	missing := []string{"Graphql", "Grpc", "Kafka", "Redis", "Elasticsearch", "Rabbitmq"}

	bundle := NewEngine().Generate(report, missing)

	assert.Len(t, bundle.TopicsToLearn, maxTopics)
}

func TestCertifications_PerRole(t *testing.T) {
	backend := NewEngine().Generate(gapReport("Backend Developer", gap.LevelMid), nil)
	unknown := NewEngine().Generate(gapReport("Frontend Developer", gap.LevelMid), nil)

	require.Len(t, backend.Certifications, 2)
	assert.Equal(t, "REST API Design", backend.Certifications[0].Name)
	assert.Empty(t, unknown.Certifications)
}

func TestResumeImprovements_WeakResume(t *testing.T) {
	report := gapReport("Software Engineer", gap.LevelFresher)
	report.ResumeStructure.Score = 60
	report.ResumeStructure.SectionsPresent = map[string]bool{}
	report.Strengths.ExperienceHighlights = nil

	bundle := NewEngine().Generate(report, nil)

	require.Len(t, bundle.ResumeImprovements, 3)
	assert.Equal(t, "Summary", bundle.ResumeImprovements[0].Section)
	assert.Equal(t, "Structure", bundle.ResumeImprovements[1].Section)
	assert.Equal(t, "Experience", bundle.ResumeImprovements[2].Section)
}

func TestResumeImprovements_StrongResume(t *testing.T) {
	bundle := NewEngine().Generate(gapReport("Software Engineer", gap.LevelMid), nil)

	assert.Empty(t, bundle.ResumeImprovements)
}

func TestActionableSteps_NumberedAndCapped(t *testing.T) {
	report := gapReport("Backend Developer", gap.LevelMid)
	report.ResumeStructure.Score = 70
	report.MissingFundamentals = []types.MissingFundamental{
		{Skill: "API Design", Priority: types.PriorityHigh, WhyImportant: "Core backend skill"},
		{Skill: "System Architecture", Priority: types.PriorityHigh, WhyImportant: "Core backend skill"},
		{Skill: "Caching", Priority: types.PriorityMedium, WhyImportant: "Performance"},
		{Skill: "Security", Priority: types.PriorityHigh, WhyImportant: "Core backend skill"},
		{Skill: "Testing", Priority: types.PriorityHigh, WhyImportant: "Core backend skill"},
	}

	bundle := NewEngine().Generate(report, nil)

	// Three high-priority learn steps plus the structure step.
	require.Len(t, bundle.ActionableSteps, 4)
	assert.Equal(t, "Learn API Design", bundle.ActionableSteps[0].Action)
	assert.Equal(t, "Learn System Architecture", bundle.ActionableSteps[1].Action)
	assert.Equal(t, "Learn Security", bundle.ActionableSteps[2].Action)
	assert.Equal(t, "Improve resume structure", bundle.ActionableSteps[3].Action)
	for i, step := range bundle.ActionableSteps {
		assert.Equal(t, i+1, step.Step)
	}
}

func TestActionableSteps_GoodStructureSkipsStructureStep(t *testing.T) {
	report := gapReport("Backend Developer", gap.LevelMid)
	report.ResumeStructure.Score = 80

	bundle := NewEngine().Generate(report, nil)

	assert.Empty(t, bundle.ActionableSteps)
}

func TestSkillAction_TableAndFallback(t *testing.T) {
	assert.Equal(t, "Solve 50+ LeetCode problems focusing on arrays, strings, and trees", skillAction("DSA"))
	assert.Equal(t, "Complete React official tutorial and build 2-3 projects", skillAction("React/Vue/Angular"))
	assert.Equal(t, "Take an online course on Terraform and build a small project", skillAction("Terraform"))
}

func TestSkillResources_TableAndFallback(t *testing.T) {
	assert.Equal(t, "System Design Primer, Grokking System Design", skillResources("System Design"))
	assert.Equal(t, "Online courses, official documentation, and practice projects", skillResources("Terraform"))
}
