package gap

import "github.com/jonathan/careeriq/internal/types"

// Readiness score weights. The bonuses are capped independently of the
// penalties; the interaction is intentional and the formula is fixed.
const (
	readinessBase      = 50
	fundamentalWeight  = 5
	fundamentalCap     = 25
	skillWeight        = 3
	skillCap           = 15
	criticalGapPenalty = 10
	mediumGapPenalty   = 5
)

// computeReadiness scores role readiness on 0-100 from matched strengths and
// missing fundamentals, with the full additive breakdown.
func computeReadiness(strengths types.Strengths, missing []types.MissingFundamental) types.ReadinessScore {
	strengthBonus := len(strengths.Fundamentals) * fundamentalWeight
	if strengthBonus > fundamentalCap {
		strengthBonus = fundamentalCap
	}
	skillBonus := len(strengths.TechnicalSkills) * skillWeight
	if skillBonus > skillCap {
		skillBonus = skillCap
	}

	criticalPenalty := 0
	mediumPenalty := 0
	for _, m := range missing {
		switch m.Priority {
		case types.PriorityHigh:
			criticalPenalty += criticalGapPenalty
		case types.PriorityMedium:
			mediumPenalty += mediumGapPenalty
		}
	}

	score := readinessBase + strengthBonus + skillBonus - criticalPenalty - mediumPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.ReadinessScore{
		Score: float64(score),
		Level: readinessLevel(float64(score)),
		Breakdown: types.ReadinessBreakdown{
			Base:            readinessBase,
			StrengthBonus:   strengthBonus,
			SkillBonus:      skillBonus,
			CriticalPenalty: -criticalPenalty,
			MediumPenalty:   -mediumPenalty,
		},
	}
}

func readinessLevel(score float64) string {
	switch {
	case score >= 80:
		return "Highly Ready"
	case score >= 60:
		return "Ready with Minor Gaps"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Significant Gaps"
	}
}
