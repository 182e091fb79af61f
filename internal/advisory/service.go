// Package advisory enriches the rule-based analysis with free-text LLM
// output. Every call is best effort: provider errors, timeouts, and invalid
// payloads all degrade to static fallbacks, never to a failed analysis.
package advisory

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/careeriq/internal/llm"
	"github.com/jonathan/careeriq/internal/prompts"
	"github.com/jonathan/careeriq/internal/schemas"
	"github.com/jonathan/careeriq/internal/types"
)

// Task identifies an advisory call type.
type Task string

// Advisory task types.
const (
	TaskInsights        Task = "insights"
	TaskRecommendations Task = "recommendations"
	TaskSuggestions     Task = "suggestions"
	TaskRoadmap         Task = "roadmap"
	TaskImprovement     Task = "improvement"
)

// callTimeout bounds a single advisory call end to end, including provider
// fallback within a chain.
const callTimeout = 30 * time.Second

// Input truncation limits keep prompts inside free-tier token budgets.
const (
	insightsResumeLimit    = 2500
	insightsJobLimit       = 2000
	recommendationsLimit   = 2000
	improvementResumeLimit = 2000
	improvementJobLimit    = 1500
	roadmapSkillLimit      = 10
)

//go:embed schema_*.json
var schemaFiles embed.FS

// Service issues advisory calls through an LLM provider chain. A Service
// with a nil client is valid and returns fallbacks for every task.
type Service struct {
	client llm.Client
}

// NewService creates an advisory Service. client may be nil, which disables
// live calls entirely.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Enabled reports whether a live provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// Insights asks for deep resume insights against the target role. The
// response is validated JSON or the static fallback.
func (s *Service) Insights(ctx context.Context, resumeText, jobDescription, targetRole string) json.RawMessage {
	input := fmt.Sprintf("RESUME:\n%s\n\nJOB DESCRIPTION:\n%s",
		truncate(resumeText, insightsResumeLimit),
		truncate(jobDescription, insightsJobLimit))
	prompt := llm.BuildExtractionPrompt(llm.ResumeInsightsSchema(targetRole), input)

	return s.call(ctx, TaskInsights, prompt, llm.TierStandard)
}

// Recommendations asks for role-specific skill recommendations.
func (s *Service) Recommendations(ctx context.Context, resumeText, targetRole string) json.RawMessage {
	template, err := prompts.Get("advisory.json", "recommendations")
	if err != nil {
		return fallback(TaskRecommendations)
	}
	prompt := prompts.Format(template, map[string]string{
		"TargetRole": targetRole,
		"Resume":     truncate(resumeText, recommendationsLimit),
	})

	return s.call(ctx, TaskRecommendations, prompt, llm.TierStandard)
}

// Suggestions asks for prioritized next actions given the gap report. The
// prompt is a handful of scalar report fields, so the lite tier is enough.
func (s *Service) Suggestions(ctx context.Context, report *types.GapReport) json.RawMessage {
	template, err := prompts.Get("advisory.json", "suggestions")
	if err != nil {
		return fallback(TaskSuggestions)
	}
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":          report.TargetRole,
		"ExperienceLevel":     report.ExperienceLevel.Level,
		"MissingFundamentals": strconv.Itoa(len(report.MissingFundamentals)),
		"RoleReadiness":       strconv.FormatFloat(report.RoleReadiness.Score, 'f', -1, 64),
	})

	return s.call(ctx, TaskSuggestions, prompt, llm.TierLite)
}

// Roadmap asks for a personalized 90-day roadmap over the missing skills.
func (s *Service) Roadmap(ctx context.Context, targetRole string, missingSkills []string) json.RawMessage {
	template, err := prompts.Get("advisory.json", "roadmap")
	if err != nil {
		return fallback(TaskRoadmap)
	}
	if len(missingSkills) > roadmapSkillLimit {
		missingSkills = missingSkills[:roadmapSkillLimit]
	}
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":    targetRole,
		"MissingSkills": strings.Join(missingSkills, ", "),
	})

	return s.call(ctx, TaskRoadmap, prompt, llm.TierAdvanced)
}

// ImprovementAdvice asks for specific resume improvement advice.
func (s *Service) ImprovementAdvice(ctx context.Context, resumeText, jobDescription string) json.RawMessage {
	input := fmt.Sprintf("CURRENT RESUME:\n%s\n\nTARGET JOB:\n%s",
		truncate(resumeText, improvementResumeLimit),
		truncate(jobDescription, improvementJobLimit))
	prompt := llm.BuildExtractionPrompt(llm.ImprovementAdviceSchema(), input)

	return s.call(ctx, TaskImprovement, prompt, llm.TierAdvanced)
}

// call runs one advisory call with timeout and schema validation, degrading
// to the task fallback on any failure.
func (s *Service) call(ctx context.Context, task Task, prompt string, tier llm.ModelTier) json.RawMessage {
	if !s.Enabled() {
		return fallback(task)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	text, err := s.client.GenerateJSON(callCtx, prompt, tier)
	if err != nil {
		return fallback(task)
	}

	if err := validate(task, text); err != nil {
		return fallback(task)
	}
	return json.RawMessage(text)
}

// validate checks the payload against the task's embedded JSON schema.
func validate(task Task, payload string) error {
	schema, err := schemaFiles.ReadFile(schemaFile(task))
	if err != nil {
		return fmt.Errorf("failed to read schema for task %s: %w", task, err)
	}
	return schemas.ValidateJSONString(string(schema), payload)
}

func schemaFile(task Task) string {
	switch task {
	case TaskInsights:
		return "schema_insights.json"
	case TaskImprovement:
		return "schema_improvement.json"
	default:
		return "schema_object.json"
	}
}

// truncate caps s at limit bytes. Prompt budgets care about size, not rune
// boundaries, and the providers tolerate a clipped trailing rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
