package matcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/careeriq/internal/roles"
	"github.com/jonathan/careeriq/internal/types"
)

// analyzeRoleCoverage compares resume skills against the role's full skill
// catalog. An exact (case-insensitive) match counts as covered; a partial
// containment match in either direction becomes a bridge suggesting the
// stronger catalog skill; everything else is a skill to learn. Coverage
// counts exact matches only.
func analyzeRoleCoverage(resumeSkills []string, role string) *types.RoleAnalysis {
	catalog := roles.CatalogFor(role)
	required := catalog.All()

	analysis := &types.RoleAnalysis{
		TargetRole:      role,
		SkillsYouHave:   []string{},
		SkillsToImprove: []types.SkillGapBridge{},
		SkillsToLearn:   []string{},
		TotalRequired:   len(required),
	}

	for _, skill := range required {
		skillLower := strings.ToLower(skill)
		matched := ""
		for _, resumeSkill := range resumeSkills {
			resumeLower := strings.ToLower(resumeSkill)
			if strings.Contains(resumeLower, skillLower) || strings.Contains(skillLower, resumeLower) {
				matched = resumeSkill
				break
			}
		}

		switch {
		case matched == "":
			analysis.SkillsToLearn = append(analysis.SkillsToLearn, skill)
		case strings.EqualFold(skill, matched):
			analysis.SkillsYouHave = append(analysis.SkillsYouHave, skill)
		default:
			analysis.SkillsToImprove = append(analysis.SkillsToImprove, types.SkillGapBridge{
				Current: matched,
				Target:  skill,
				Gap:     fmt.Sprintf("Your resume mentions '%s' but the role requires stronger '%s' skills", matched, skill),
			})
		}
	}

	analysis.TotalYouHave = len(analysis.SkillsYouHave)
	if len(required) > 0 {
		analysis.CoveragePercentage = math.Round(float64(analysis.TotalYouHave)/float64(len(required))*100*100) / 100
	}
	return analysis
}
