// Package roadmap builds time-boxed 30/60/90-day learning plans from the
// gap analysis. Plans are deterministic slices of the prioritized missing
// fundamentals; the three horizons are generated independently.
package roadmap

import (
	"github.com/jonathan/careeriq/internal/types"
)

// Generator produces learning roadmaps. Stateless and safe for concurrent
// use.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the full roadmap for a role and experience level from the
// missing job skills and missing fundamentals.
func (g *Generator) Generate(targetRole, experienceLevel string, missingSkills []string, missingFundamentals []types.MissingFundamental) *types.LearningRoadmap {
	return &types.LearningRoadmap{
		ThirtyDay:       thirtyDayPlan(missingFundamentals),
		SixtyDay:        sixtyDayPlan(missingSkills, missingFundamentals),
		NinetyDay:       ninetyDayPlan(missingFundamentals),
		TargetRole:      targetRole,
		ExperienceLevel: experienceLevel,
	}
}

// byPriority filters missing fundamentals to one tier, keeping input order,
// capped at limit. A negative limit means no cap.
func byPriority(missing []types.MissingFundamental, priority string, limit int) []string {
	var skills []string
	for _, m := range missing {
		if m.Priority != priority {
			continue
		}
		skills = append(skills, m.Skill)
		if limit >= 0 && len(skills) == limit {
			break
		}
	}
	return skills
}

// firstOr returns the first element, or fallback for an empty slice.
func firstOr(skills []string, fallback string) string {
	if len(skills) > 0 {
		return skills[0]
	}
	return fallback
}

func capStrings(s []string, limit int) []string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func thirtyDayPlan(missing []types.MissingFundamental) types.Plan {
	highPriority := byPriority(missing, types.PriorityHigh, 2)
	mediumPriority := byPriority(missing, types.PriorityMedium, 1)

	week1Skills := capStrings(highPriority, 1)

	var week3Skills []string
	if len(highPriority) > 1 {
		week3Skills = append(week3Skills, highPriority[1:]...)
	}
	week3Skills = append(week3Skills, mediumPriority...)

	phases := []types.Phase{
		{
			Label:  "Week 1",
			Focus:  "Foundation Building",
			Skills: week1Skills,
			Tasks: []string{
				"Learn basics of " + firstOr(week1Skills, "core skills"),
				"Complete online course or tutorial",
				"Practice with small exercises",
			},
			Milestone: "Understand fundamentals of " + firstOr(week1Skills, "core concepts"),
		},
		{
			Label:  "Week 2",
			Focus:  "Hands-on Practice",
			Skills: week1Skills,
			Tasks: []string{
				"Build small practice projects",
				"Solve coding problems related to skills",
				"Review and reinforce concepts",
			},
			Projects:  []string{"Build 1 small project using " + firstOr(week1Skills, "learned skills")},
			Milestone: "Complete first project",
		},
		{
			Label:  "Week 3",
			Focus:  "Advanced Learning",
			Skills: week3OrWeek1(week3Skills, week1Skills),
			Tasks: []string{
				"Learn advanced concepts",
				"Study best practices",
				"Review industry standards",
			},
			Milestone: "Gain deeper understanding",
		},
		{
			Label:  "Week 4",
			Focus:  "Integration & Portfolio",
			Skills: append(append([]string{}, week1Skills...), capStrings(week3Skills, 1)...),
			Tasks: []string{
				"Build a portfolio project",
				"Add projects to GitHub",
				"Update resume with new skills",
			},
			Projects:  []string{"Build 1 portfolio project showcasing " + firstOr(week1Skills, "skills")},
			Milestone: "Complete portfolio project and update resume",
		},
	}

	return types.Plan{
		Duration:        "30 days",
		Phases:          phases,
		TotalProjects:   2,
		FocusAreas:      highPriority,
		SuccessCriteria: "Complete 2 projects and add skills to resume",
	}
}

// week3OrWeek1 falls back to the week 1 skills when the later tiers are empty.
func week3OrWeek1(week3, week1 []string) []string {
	if len(week3) == 0 {
		return week1
	}
	return capStrings(week3, 2)
}

func sixtyDayPlan(missingSkills []string, missing []types.MissingFundamental) types.Plan {
	highPriority := byPriority(missing, types.PriorityHigh, 3)
	mediumPriority := byPriority(missing, types.PriorityMedium, 2)

	phases := []types.Phase{
		{
			Label:  "Weeks 1-2",
			Focus:  "Core Fundamentals",
			Skills: capStrings(highPriority, 2),
			Tasks: []string{
				"Complete comprehensive courses",
				"Practice daily coding problems",
				"Build understanding of core concepts",
			},
			Projects:  []string{"Build 1 foundational project"},
			Milestone: "Strong foundation in core skills",
		},
		{
			Label:  "Weeks 3-4",
			Focus:  "Practical Application",
			Skills: highPriority,
			Tasks: []string{
				"Build real-world projects",
				"Implement best practices",
				"Get code reviews",
			},
			Projects:  []string{"Build 2-3 practical projects"},
			Milestone: "Portfolio with 3+ projects",
		},
		{
			Label:  "Weeks 5-6",
			Focus:  "Advanced Topics & Specialization",
			Skills: append(append([]string{}, mediumPriority...), capStrings(missingSkills, 2)...),
			Tasks: []string{
				"Learn advanced concepts",
				"Study system design (if applicable)",
				"Prepare for interviews",
			},
			Projects:  []string{"Build 1 advanced project"},
			Milestone: "Ready for technical interviews",
		},
		{
			Label:  "Weeks 7-8",
			Focus:  "Mastery & Portfolio Building",
			Skills: []string{"All learned skills"},
			Tasks: []string{
				"Refine portfolio projects",
				"Write technical blog posts",
				"Contribute to open source",
				"Update resume comprehensively",
			},
			Projects:  []string{"Polish all projects", "Add to portfolio"},
			Milestone: "Strong portfolio ready for job applications",
		},
	}

	return types.Plan{
		Duration:        "60 days",
		Phases:          phases,
		TotalProjects:   5,
		FocusAreas:      append(append([]string{}, highPriority...), mediumPriority...),
		SuccessCriteria: "Complete 5+ projects, strong portfolio, interview-ready",
	}
}

func ninetyDayPlan(missing []types.MissingFundamental) types.Plan {
	highPriority := byPriority(missing, types.PriorityHigh, -1)
	mediumPriority := byPriority(missing, types.PriorityMedium, -1)

	phases := []types.Phase{
		{
			Label:  "Days 1-30",
			Focus:  "Build Strong Foundation",
			Skills: capStrings(highPriority, 3),
			Tasks: []string{
				"Complete comprehensive courses",
				"Daily coding practice",
				"Build foundational projects",
			},
			Projects:  []string{"Build 3 foundational projects"},
			Milestone: "Strong foundation established",
		},
		{
			Label:  "Days 31-60",
			Focus:  "Real-World Application",
			Skills: append(append([]string{}, highPriority...), capStrings(mediumPriority, 2)...),
			Tasks: []string{
				"Build complex projects",
				"Implement best practices",
				"Get mentorship/feedback",
			},
			Projects:  []string{"Build 4 practical projects"},
			Milestone: "Portfolio with 7+ projects",
		},
		{
			Label:  "Days 61-90",
			Focus:  "Mastery & Specialization",
			Skills: []string{"All skills + specialization"},
			Tasks: []string{
				"Advanced projects",
				"Open source contributions",
				"Technical writing",
				"Interview preparation",
				"Resume optimization",
			},
			Projects:  []string{"Build 3 advanced projects"},
			Milestone: "Job-ready with strong portfolio",
		},
	}

	return types.Plan{
		Duration:        "90 days",
		Phases:          phases,
		TotalProjects:   10,
		FocusAreas:      append(append([]string{}, highPriority...), mediumPriority...),
		SuccessCriteria: "Complete 10+ projects, strong portfolio, interview-ready, job applications ready",
	}
}
