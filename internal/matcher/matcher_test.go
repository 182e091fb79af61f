package matcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careeriq/internal/advisory"
	"github.com/jonathan/careeriq/internal/embedding"
	"github.com/jonathan/careeriq/internal/extraction"
	"github.com/jonathan/careeriq/internal/llm"
)

const testResume = `Jane Doe
Summary: Backend developer with three years of experience.
Skills: Python, Git, Docker
Experience: Built containerized billing services in Python with Docker.
Projects: Developed an internal deployment dashboard used by 40 engineers.`

const testJob = `Looking for Backend Developer with Python, REST API, Docker experience.
Knowledge of SQL required. You will design database schemas and build microservices.`

func newTestOrchestrator(t *testing.T, advisor *advisory.Service) *Orchestrator {
	t.Helper()
	scorer, err := embedding.NewSimilarityScorer(embedding.NewHashedEmbedder(256))
	require.NoError(t, err)
	orch, err := NewOrchestrator(extraction.NewExtractor(extraction.DelimiterSegmenter{}), scorer, advisor, "")
	require.NoError(t, err)
	return orch
}

func TestNewOrchestrator_RequiresStages(t *testing.T) {
	scorer, err := embedding.NewSimilarityScorer(embedding.NewHashedEmbedder(64))
	require.NoError(t, err)

	_, err = NewOrchestrator(nil, scorer, nil, "")
	assert.ErrorContains(t, err, "extractor")

	_, err = NewOrchestrator(extraction.NewExtractor(nil), nil, nil, "")
	assert.ErrorContains(t, err, "scorer")
}

func TestOrchestrator_Match_BackendScenario(t *testing.T) {
	orch := newTestOrchestrator(t, nil)

	report, err := orch.Match(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RequestID)
	assert.GreaterOrEqual(t, report.MatchScore, 0.0)
	assert.LessOrEqual(t, report.MatchScore, 100.0)

	assert.Contains(t, report.MatchedSkills, "Python")
	assert.Contains(t, report.MatchedSkills, "Docker")
	assert.Contains(t, report.MissingSkills, "Rest Api")
	assert.Contains(t, report.MissingSkills, "Sql")
	assert.Contains(t, report.ExtraSkills, "Git")

	assert.Equal(t, len(report.MatchedSkills), report.MatchedSkillCount)
	assert.Equal(t, len(report.MatchedSkills)+len(report.MissingSkills), report.JobSkillCount)
	assert.Equal(t, len(report.MatchedSkills)+len(report.ExtraSkills), report.ResumeSkillCount)

	require.NotNil(t, report.AdvancedAnalysis)
	assert.Equal(t, "Backend Developer", report.AdvancedAnalysis.TargetRole)
	require.NotNil(t, report.SmartSuggestions)
	require.NotNil(t, report.LearningRoadmap)
	require.NotNil(t, report.RoleAnalysis)
	assert.Equal(t, "Backend Developer", report.RoleAnalysis.TargetRole)

	assert.NotEmpty(t, report.Recommendations.Summary)
	assert.Len(t, report.Recommendations.GeneralTips, 5)
	assert.NotEmpty(t, report.SkillRecommendations)

	assert.False(t, report.AIEnabled)
	assert.Nil(t, report.AIInsights)
	assert.Nil(t, report.ResumeImprovement)
}

func TestOrchestrator_Match_PluralSkillMentions(t *testing.T) {
	// "REST APIs" never matches the whole-word vocabulary pattern; only the
	// phrase pass recovers it from the resume.
	orch := newTestOrchestrator(t, nil)

	report, err := orch.Match(context.Background(),
		"Experienced Python developer, 5 years, built REST APIs with Django",
		"Looking for Backend Developer with Python, REST API, Docker experience")
	require.NoError(t, err)

	assert.Contains(t, report.MatchedSkills, "Python")
	assert.Contains(t, report.MatchedSkills, "Rest Api")
	assert.Contains(t, report.MissingSkills, "Docker")
	require.NotNil(t, report.AdvancedAnalysis)
	assert.Equal(t, "Backend Developer", report.AdvancedAnalysis.TargetRole)
	assert.Equal(t, "mid", report.AdvancedAnalysis.ExperienceLevel.Level)
}

func TestOrchestrator_Match_ConfiguredDefaultRole(t *testing.T) {
	scorer, err := embedding.NewSimilarityScorer(embedding.NewHashedEmbedder(64))
	require.NoError(t, err)
	orch, err := NewOrchestrator(extraction.NewExtractor(extraction.DelimiterSegmenter{}), scorer, nil, "Platform Engineer")
	require.NoError(t, err)

	report, err := orch.Match(context.Background(),
		"Skills: Python, Git",
		"Great opportunity at a growing company.")
	require.NoError(t, err)

	require.NotNil(t, report.AdvancedAnalysis)
	assert.Equal(t, "Platform Engineer", report.AdvancedAnalysis.TargetRole)
	require.NotNil(t, report.RoleAnalysis)
	assert.Equal(t, "Platform Engineer", report.RoleAnalysis.TargetRole)
}

func TestOrchestrator_Match_PartitionsJobSkills(t *testing.T) {
	orch := newTestOrchestrator(t, nil)

	report, err := orch.Match(context.Background(), testResume, testJob)
	require.NoError(t, err)

	jobSkills := orch.extractor.Extract(testJob).Labels()
	assert.ElementsMatch(t, jobSkills, append(append([]string{}, report.MatchedSkills...), report.MissingSkills...))

	for _, skill := range report.ExtraSkills {
		assert.NotContains(t, jobSkills, skill)
	}
	assert.IsNonDecreasing(t, report.MatchedSkills)
	assert.IsNonDecreasing(t, report.MissingSkills)
	assert.IsNonDecreasing(t, report.ExtraSkills)
}

func TestOrchestrator_Match_Deterministic(t *testing.T) {
	orch := newTestOrchestrator(t, nil)

	first, err := orch.Match(context.Background(), testResume, testJob)
	require.NoError(t, err)
	second, err := orch.Match(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)

	first.RequestID = ""
	second.RequestID = ""
	assert.Equal(t, first, second)
}

func TestOrchestrator_Match_EmptyInputs(t *testing.T) {
	orch := newTestOrchestrator(t, nil)

	report, err := orch.Match(context.Background(), "", "")
	require.NoError(t, err)

	assert.Zero(t, report.MatchScore)
	assert.Empty(t, report.MatchedSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Empty(t, report.ExtraSkills)
	require.NotNil(t, report.AdvancedAnalysis)
}

// advisorStub satisfies llm.Client with a canned payload, valid for the
// insights schema and the plain-object schemas but not the improvement one.
type advisorStub struct{}

func (advisorStub) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return `{"role_fit": 6, "key_strengths": ["Python"], "critical_gaps": ["Sql"]}`, nil
}

func (s advisorStub) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.GenerateContent(ctx, prompt, tier)
}

func (advisorStub) GetModel(llm.ModelTier) string { return "stub-model" }
func (advisorStub) Close() error                  { return nil }

func TestOrchestrator_Match_WithAdvisor(t *testing.T) {
	orch := newTestOrchestrator(t, advisory.NewService(advisorStub{}))

	report, err := orch.Match(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.True(t, report.AIEnabled)
	assert.JSONEq(t,
		`{"role_fit": 6, "key_strengths": ["Python"], "critical_gaps": ["Sql"]}`,
		string(report.AIInsights))
	assert.NotEmpty(t, report.AISkillAdvice)
	assert.NotEmpty(t, report.AISuggestions)
	assert.NotEmpty(t, report.AIRoadmap)

	// The canned payload fails the improvement schema, so that section
	// carries the static fallback advice.
	assert.Contains(t, string(report.ResumeImprovement), "summary_suggestions")
}
