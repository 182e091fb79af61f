// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careeriq/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchSummary outputs the score and skill partition of a report.
func (p *Printer) PrintMatchSummary(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match score:  %.2f%%\n", report.MatchScore))
	sb.WriteString(fmt.Sprintf("Job skills:   %d (matched %d)\n", report.JobSkillCount, report.MatchedSkillCount))
	sb.WriteString("\n")

	if len(report.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(report.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MatchedSkills[i]))
		}
		if len(report.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MatchedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(report.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the role, experience, and readiness of a gap report.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Target role:  %s\n", report.TargetRole))
	sb.WriteString(fmt.Sprintf("Experience:   %s", report.ExperienceLevel.Level))
	if report.ExperienceLevel.Years > 0 {
		sb.WriteString(fmt.Sprintf(" (%d years)", report.ExperienceLevel.Years))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Readiness:    %.0f/100 - %s\n", report.RoleReadiness.Score, report.RoleReadiness.Level))
	sb.WriteString(fmt.Sprintf("Structure:    %.1f/100 - %s\n", report.ResumeStructure.Score, report.ResumeStructure.Quality))

	if len(report.MissingFundamentals) > 0 {
		sb.WriteString("\nMissing fundamentals:\n")
		count := min(len(report.MissingFundamentals), maxItemsToShow)
		for i := 0; i < count; i++ {
			missing := report.MissingFundamentals[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s (%s)\n", missing.Skill, missing.Impact))
		}
		if len(report.MissingFundamentals) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingFundamentals)-maxItemsToShow))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the top skills to add and the immediate steps.
func (p *Printer) PrintSuggestions(bundle *types.SuggestionBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder

	if len(bundle.SkillsToAdd) > 0 {
		sb.WriteString("Skills to add:\n")
		count := min(len(bundle.SkillsToAdd), maxItemsToShow)
		for i := 0; i < count; i++ {
			suggestion := bundle.SkillsToAdd[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", suggestion.Skill, suggestion.Priority))
		}
		if len(bundle.SkillsToAdd) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.SkillsToAdd)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(bundle.ActionableSteps) > 0 {
		sb.WriteString("Next steps:\n")
		for _, step := range bundle.ActionableSteps {
			action := step.Action
			if len(action) > 45 {
				action = action[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", step.Step, action))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the focus areas of each learning plan.
func (p *Printer) PrintRoadmap(roadmap *types.LearningRoadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:  %s\n\n", roadmap.TargetRole))

	plans := []struct {
		label string
		plan  types.Plan
	}{
		{"30 days", roadmap.ThirtyDay},
		{"60 days", roadmap.SixtyDay},
		{"90 days", roadmap.NinetyDay},
	}
	for i, entry := range plans {
		sb.WriteString(fmt.Sprintf("%s (%d projects)\n", entry.label, entry.plan.TotalProjects))
		if len(entry.plan.FocusAreas) > 0 {
			focus := strings.Join(entry.plan.FocusAreas, ", ")
			if len(focus) > 48 {
				focus = focus[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  Focus: %s\n", focus))
		}
		if i < len(plans)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleAnalysis outputs the coverage of role-required skills.
func (p *Printer) PrintRoleAnalysis(analysis *types.RoleAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", analysis.TargetRole))
	sb.WriteString(fmt.Sprintf("Coverage:  %.2f%% (%d of %d skills)\n",
		analysis.CoveragePercentage, analysis.TotalYouHave, analysis.TotalRequired))

	if len(analysis.SkillsToLearn) > 0 {
		sb.WriteString("\nTo learn:\n")
		count := min(len(analysis.SkillsToLearn), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.SkillsToLearn[i]))
		}
		if len(analysis.SkillsToLearn) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.SkillsToLearn)-maxItemsToShow))
		}
	}

	p.printBox("ROLE COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}
