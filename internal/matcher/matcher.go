// Package matcher orchestrates the full resume-vs-job analysis: skill
// extraction, similarity scoring, gap analysis, suggestions, roadmaps, and
// optional advisory enrichment, assembled into a single report.
package matcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/careeriq/internal/advisory"
	"github.com/jonathan/careeriq/internal/embedding"
	"github.com/jonathan/careeriq/internal/extraction"
	"github.com/jonathan/careeriq/internal/gap"
	"github.com/jonathan/careeriq/internal/recommend"
	"github.com/jonathan/careeriq/internal/roadmap"
	"github.com/jonathan/careeriq/internal/roles"
	"github.com/jonathan/careeriq/internal/suggest"
	"github.com/jonathan/careeriq/internal/types"
)

// Orchestrator wires the analysis stages together. Construct once and reuse;
// all stages are safe for concurrent use.
type Orchestrator struct {
	extractor   *extraction.Extractor
	scorer      *embedding.SimilarityScorer
	recommender *recommend.Recommender
	analyzer    *gap.Analyzer
	suggester   *suggest.Engine
	planner     *roadmap.Generator
	advisor     *advisory.Service
	detector    roles.FirstMatch
}

// NewOrchestrator creates an Orchestrator. advisor may be nil, which disables
// the AI-backed report sections and leaves the rule-based analysis intact.
// defaultRole is the role assumed when classification finds no keywords;
// empty means roles.DefaultRole.
func NewOrchestrator(extractor *extraction.Extractor, scorer *embedding.SimilarityScorer, advisor *advisory.Service, defaultRole string) (*Orchestrator, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}
	if scorer == nil {
		return nil, fmt.Errorf("scorer cannot be nil")
	}
	if advisor == nil {
		advisor = advisory.NewService(nil)
	}

	return &Orchestrator{
		extractor:   extractor,
		scorer:      scorer,
		recommender: recommend.NewRecommender(),
		analyzer:    gap.NewAnalyzer(roles.BestMatch{Fallback: defaultRole}, advisor.Enabled()),
		suggester:   suggest.NewEngine(),
		planner:     roadmap.NewGenerator(),
		advisor:     advisor,
		detector:    roles.FirstMatch{Fallback: defaultRole},
	}, nil
}

// Match runs the full analysis of a resume against a job description and
// returns the assembled report. The rule-based sections are always populated;
// advisory sections are filled only when a provider chain is configured.
func (o *Orchestrator) Match(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisReport, error) {
	resumeSkills := o.extractor.Extract(resumeText)
	jobSkills := o.extractor.Extract(jobDescription)

	score, err := o.scorer.Score(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("scoring similarity failed: %w", err)
	}

	matched, missing := partitionJobSkills(jobSkills, resumeSkills)
	extra := extraSkills(resumeSkills, jobSkills)

	gapReport := o.analyzer.Analyze(resumeText, jobDescription, resumeSkills, jobSkills)
	suggestions := o.suggester.Generate(gapReport, missing)
	plan := o.planner.Generate(gapReport.TargetRole, gapReport.ExperienceLevel.Level, missing, gapReport.MissingFundamentals)

	report := &types.AnalysisReport{
		RequestID:            uuid.NewString(),
		MatchScore:           score,
		MatchedSkills:        matched,
		MissingSkills:        missing,
		ExtraSkills:          extra,
		Recommendations:      buildRecommendations(score, matched, missing),
		SkillRecommendations: o.recommender.RecommendSkills(missing),
		ResumeSkillCount:     resumeSkills.Len(),
		JobSkillCount:        jobSkills.Len(),
		MatchedSkillCount:    len(matched),
		AdvancedAnalysis:     gapReport,
		SmartSuggestions:     suggestions,
		LearningRoadmap:      plan,
		RoleAnalysis:         analyzeRoleCoverage(resumeSkills.Labels(), o.detector.Classify(jobDescription)),
		AIEnabled:            o.advisor.Enabled(),
	}

	if o.advisor.Enabled() {
		o.enrich(ctx, report, resumeText, jobDescription, gapReport, missing)
	}

	return report, nil
}

// enrich runs the advisory calls concurrently. Each call degrades to a
// static fallback internally, so the group never returns an error.
func (o *Orchestrator) enrich(ctx context.Context, report *types.AnalysisReport, resumeText, jobDescription string, gapReport *types.GapReport, missingSkills []string) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.AIInsights = o.advisor.Insights(gctx, resumeText, jobDescription, gapReport.TargetRole)
		return nil
	})
	g.Go(func() error {
		report.AISkillAdvice = o.advisor.Recommendations(gctx, resumeText, gapReport.TargetRole)
		return nil
	})
	g.Go(func() error {
		report.AISuggestions = o.advisor.Suggestions(gctx, gapReport)
		return nil
	})
	g.Go(func() error {
		report.AIRoadmap = o.advisor.Roadmap(gctx, gapReport.TargetRole, missingSkills)
		return nil
	})
	g.Go(func() error {
		report.ResumeImprovement = o.advisor.ImprovementAdvice(gctx, resumeText, jobDescription)
		return nil
	})

	_ = g.Wait()
}

// partitionJobSkills splits the job's skills into those present in the resume
// and those missing from it. Both slices stay sorted because SkillSet labels
// are sorted.
func partitionJobSkills(jobSkills, resumeSkills *types.SkillSet) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, skill := range jobSkills.Labels() {
		if resumeSkills.Has(skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// extraSkills returns resume skills the job did not ask for, sorted.
func extraSkills(resumeSkills, jobSkills *types.SkillSet) []string {
	extra := []string{}
	for _, skill := range resumeSkills.Labels() {
		if !jobSkills.Has(skill) {
			extra = append(extra, skill)
		}
	}
	return extra
}
