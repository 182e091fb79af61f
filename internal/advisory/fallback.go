package advisory

import "encoding/json"

// fallbackPayloads are the static responses used when no provider is
// configured or every provider fails. The analysis payload marks itself
// unavailable so report consumers can hide the section; the improvement
// payload carries generic but still useful advice.
var fallbackPayloads = map[Task]string{
	TaskInsights: `{
		"parsed": false,
		"unavailable": true
	}`,
	TaskRecommendations: `{
		"recommended_skills": [],
		"learning_priority": {},
		"skill_explanations": {},
		"learning_resources": {}
	}`,
	TaskSuggestions: `{
		"top_3_priorities": [],
		"quick_wins": [],
		"long_term": []
	}`,
	TaskRoadmap: `{
		"roadmap_steps": [],
		"estimated_timeline": {},
		"free_resources": {},
		"practice_projects": {},
		"milestones": []
	}`,
	TaskImprovement: `{
		"summary_suggestions": "Tailor your summary to match the job description",
		"experience_improvements": "Use action verbs and quantify achievements",
		"skills_section_tips": "List skills in order of relevance to the job",
		"keyword_optimization": "Include keywords from the job description",
		"formatting_tips": "Keep formatting clean and consistent"
	}`,
}

// fallback returns the static payload for a task.
func fallback(task Task) json.RawMessage {
	if payload, ok := fallbackPayloads[task]; ok {
		return json.RawMessage(payload)
	}
	return json.RawMessage(`{"response": "Service unavailable"}`)
}
