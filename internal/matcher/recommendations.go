package matcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/careeriq/internal/types"
)

// Caps on the per-section recommendation lists.
const (
	maxResumeChangeSkills = 5
	maxSkillImprovements  = 5
	maxStrengthenSkills   = 3
)

const improvementTimeline = "1-2 weeks for basics, 1-3 months for proficiency"

// skillTip maps a skill keyword to a beginner-friendly learning tip. Ordered
// so lookups are deterministic when a skill matches more than one key.
type skillTip struct {
	key string
	tip string
}

var skillTips = []skillTip{
	{"python", "Start with Python basics on freeCodeCamp or Codecademy. Build 2-3 small projects (calculator, todo app, web scraper)."},
	{"javascript", "Learn JavaScript fundamentals on MDN Web Docs. Practice by building interactive web pages."},
	{"react", "Complete React's official tutorial. Build a portfolio website or todo app to practice."},
	{"aws", "Start with AWS Free Tier. Follow AWS's 'Getting Started' guides. Try deploying a simple website."},
	{"docker", "Install Docker Desktop. Follow Docker's 'Get Started' tutorial. Containerize a simple web app."},
	{"machine learning", "Take Andrew Ng's Machine Learning course on Coursera. Start with simple projects like house price prediction."},
	{"sql", "Practice on SQLBolt or LeetCode. Learn JOINs, subqueries, and window functions."},
	{"git", "Complete GitHub's 'Hello World' guide. Practice by creating a GitHub repository and making commits."},
}

var generalTips = []types.GeneralTip{
	{
		Tip:         "Use Action Verbs",
		Description: "Replace passive language with action verbs: 'Developed', 'Implemented', 'Designed', 'Optimized', 'Led'",
	},
	{
		Tip:         "Quantify Achievements",
		Description: "Add numbers: 'Improved performance by 30%', 'Managed team of 5', 'Reduced costs by $10K'",
	},
	{
		Tip:         "Match Keywords",
		Description: "Use the exact same keywords from the job description in your resume (naturally, not forced)",
	},
	{
		Tip:         "Highlight Relevant Experience",
		Description: "Move the most relevant experience to the top of your resume",
	},
	{
		Tip:         "Add Projects Section",
		Description: "If you're missing required skills, add a 'Projects' section showing you've worked with those technologies",
	},
}

// buildRecommendations assembles the rule-based improvement guidance block
// from the match score and the skill partition.
func buildRecommendations(matchScore float64, matchedSkills, missingSkills []string) types.Recommendations {
	recs := types.Recommendations{
		Summary:            scoreSummary(matchScore),
		ResumeChanges:      []types.ResumeChange{},
		SkillImprovements:  []types.SkillImprovement{},
		StrengthenExisting: []types.StrengthenSuggestion{},
		GeneralTips:        append([]types.GeneralTip(nil), generalTips...),
	}

	if len(missingSkills) > 0 {
		topMissing := missingSkills
		if len(topMissing) > maxResumeChangeSkills {
			topMissing = topMissing[:maxResumeChangeSkills]
		}
		joined := strings.Join(topMissing, ", ")
		recs.ResumeChanges = append(recs.ResumeChanges, types.ResumeChange{
			Title: "Add Missing Skills Section",
			Description: fmt.Sprintf("Create a dedicated 'Technical Skills' section and include: %s. "+
				"Even if you're a beginner, mention if you've taken courses or worked on projects with these technologies.", joined),
			Action: "Add these keywords to your resume: " + joined,
		})
	}

	for i, skill := range missingSkills {
		if i >= maxSkillImprovements {
			break
		}
		recs.SkillImprovements = append(recs.SkillImprovements, types.SkillImprovement{
			Skill:         skill,
			CurrentStatus: "Not in resume",
			ActionPlan:    skillImprovementTip(skill),
			Timeline:      improvementTimeline,
		})
	}

	for i, skill := range matchedSkills {
		if i >= maxStrengthenSkills {
			break
		}
		recs.StrengthenExisting = append(recs.StrengthenExisting, types.StrengthenSuggestion{
			Skill:           skill,
			HowToStrengthen: strengthenText(skill),
		})
	}

	return recs
}

// scoreSummary bands the match score into an encouraging one-paragraph summary.
func scoreSummary(matchScore float64) string {
	score := strconv.FormatFloat(matchScore, 'f', -1, 64)
	switch {
	case matchScore < 50:
		return fmt.Sprintf("Your resume has a %s%% match score, which indicates significant gaps. "+
			"Don't worry - this is fixable! Focus on aligning your resume with the job requirements.", score)
	case matchScore < 70:
		return fmt.Sprintf("Your resume shows a %s%% match - good foundation, but needs improvement. "+
			"With some targeted changes, you can significantly increase your match score.", score)
	default:
		return fmt.Sprintf("Excellent! Your resume has a %s%% match score. "+
			"You're well-aligned with the job requirements. Focus on highlighting your strengths.", score)
	}
}

// skillImprovementTip returns a beginner-friendly tip for picking up a skill,
// falling back to a generic numbered plan for unknown skills.
func skillImprovementTip(skill string) string {
	skillLower := strings.ToLower(skill)
	for _, entry := range skillTips {
		if strings.Contains(skillLower, entry.key) {
			return entry.tip
		}
	}
	return fmt.Sprintf("To learn %s:\n"+
		"  1. Find a beginner-friendly tutorial or course\n"+
		"  2. Practice with small projects\n"+
		"  3. Add it to your resume once you've built something with it\n"+
		"  4. Consider getting a certification if available", skill)
}

func strengthenText(skill string) string {
	return fmt.Sprintf("✅ You already have %[1]s! To strengthen it:\n"+
		"  • Add specific projects where you used %[1]s\n"+
		"  • Quantify your experience (e.g., 'Built 3 applications using %[1]s')\n"+
		"  • Mention any certifications or courses related to %[1]s\n"+
		"  • Add %[1]s to your resume summary/objective", skill)
}
