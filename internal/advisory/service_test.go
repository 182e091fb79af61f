package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careeriq/internal/llm"
	"github.com/jonathan/careeriq/internal/types"
)

// fakeClient returns a scripted response for every advisory call.
type fakeClient struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                    { return nil }

func TestService_Disabled(t *testing.T) {
	service := NewService(nil)

	assert.False(t, service.Enabled())

	payload := service.Insights(context.Background(), "resume", "job", "Software Engineer")
	assert.JSONEq(t, `{"parsed": false, "unavailable": true}`, string(payload))
}

func TestService_Insights_ValidResponse(t *testing.T) {
	client := &fakeClient{response: `{
		"role_fit": 7,
		"key_strengths": ["Python", "REST APIs"],
		"critical_gaps": ["System Design"],
		"experience_assessment": "solid mid-level profile",
		"resume_quality_score": 8,
		"specific_recommendations": ["Add metrics to experience bullets"]
	}`}
	service := NewService(client)

	payload := service.Insights(context.Background(), "resume text", "job text", "Backend Developer")

	var insights map[string]any
	require.NoError(t, json.Unmarshal(payload, &insights))
	assert.Equal(t, float64(7), insights["role_fit"])

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Backend Developer")
	assert.Contains(t, client.prompts[0], "resume text")
}

func TestService_Insights_InvalidPayloadFallsBack(t *testing.T) {
	// role_fit is required by the schema.
	client := &fakeClient{response: `{"key_strengths": ["Python"]}`}
	service := NewService(client)

	payload := service.Insights(context.Background(), "resume", "job", "Software Engineer")

	assert.JSONEq(t, `{"parsed": false, "unavailable": true}`, string(payload))
}

func TestService_Insights_ProviderErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("rate limited")}
	service := NewService(client)

	payload := service.Insights(context.Background(), "resume", "job", "Software Engineer")

	assert.JSONEq(t, `{"parsed": false, "unavailable": true}`, string(payload))
}

func TestService_Insights_TruncatesLongInput(t *testing.T) {
	client := &fakeClient{response: `{"role_fit": 5, "key_strengths": [], "critical_gaps": []}`}
	service := NewService(client)

	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}
	service.Insights(context.Background(), string(long), "job", "Software Engineer")

	require.Len(t, client.prompts, 1)
	assert.Less(t, len(client.prompts[0]), 6000)
}

func TestService_Suggestions_UsesReportFields(t *testing.T) {
	client := &fakeClient{response: `{"top_3_priorities": ["Learn System Design"]}`}
	service := NewService(client)

	report := &types.GapReport{
		TargetRole:      "Software Engineer",
		ExperienceLevel: types.ExperienceLevel{Level: "junior"},
		MissingFundamentals: []types.MissingFundamental{
			{Skill: "System Design", Priority: types.PriorityHigh},
			{Skill: "OOP", Priority: types.PriorityHigh},
		},
		RoleReadiness: types.ReadinessScore{Score: 55},
	}

	payload := service.Suggestions(context.Background(), report)

	assert.JSONEq(t, `{"top_3_priorities": ["Learn System Design"]}`, string(payload))
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Software Engineer")
	assert.Contains(t, client.prompts[0], "junior")
	assert.Contains(t, client.prompts[0], "2")
	assert.Contains(t, client.prompts[0], "55")
	assert.Equal(t, []llm.ModelTier{llm.TierLite}, client.tiers)
}

func TestService_TaskTiers(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("unavailable")}
	service := NewService(client)
	report := &types.GapReport{TargetRole: "Software Engineer"}

	service.Insights(context.Background(), "resume", "job", "Software Engineer")
	service.Recommendations(context.Background(), "resume", "Software Engineer")
	service.Suggestions(context.Background(), report)
	service.Roadmap(context.Background(), "Software Engineer", []string{"Sql"})
	service.ImprovementAdvice(context.Background(), "resume", "job")

	assert.Equal(t, []llm.ModelTier{
		llm.TierStandard,
		llm.TierStandard,
		llm.TierLite,
		llm.TierAdvanced,
		llm.TierAdvanced,
	}, client.tiers)
}

func TestService_Roadmap_CapsMissingSkills(t *testing.T) {
	client := &fakeClient{response: `{"roadmap_steps": []}`}
	service := NewService(client)

	skills := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12"}
	service.Roadmap(context.Background(), "ML Engineer", skills)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "s10")
	assert.NotContains(t, client.prompts[0], "s11")
}

func TestService_ImprovementAdvice_FallbackKeepsAdvice(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("unavailable")}
	service := NewService(client)

	payload := service.ImprovementAdvice(context.Background(), "resume", "job")

	var advice map[string]string
	require.NoError(t, json.Unmarshal(payload, &advice))
	assert.NotEmpty(t, advice["summary_suggestions"])
	assert.NotEmpty(t, advice["formatting_tips"])
}

func TestService_Recommendations_NonObjectFallsBack(t *testing.T) {
	client := &fakeClient{response: `["not", "an", "object"]`}
	service := NewService(client)

	payload := service.Recommendations(context.Background(), "resume", "Data Scientist")

	var recs map[string]any
	require.NoError(t, json.Unmarshal(payload, &recs))
	assert.Contains(t, recs, "recommended_skills")
}

func TestFallback_UnknownTask(t *testing.T) {
	payload := fallback(Task("nope"))
	assert.JSONEq(t, `{"response": "Service unavailable"}`, string(payload))
}
