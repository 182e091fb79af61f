// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeInsights")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base every statement on the text, do not invent facts about the candidate.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeInsightsSchema returns the extraction schema for deep resume
// insights against a target role.
func ResumeInsightsSchema(targetRole string) ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeInsights",
		Description: fmt.Sprintf(`You are an expert technical recruiter. Analyze the resume and job description below for a %s position.
Assess fit honestly: name concrete strengths and concrete gaps, not generic advice.`, targetRole),
		Fields: []SchemaField{
			{
				Name:        "role_fit",
				Type:        "number",
				Description: "How well the candidate fits the role on a 1-10 scale",
				Required:    true,
			},
			{
				Name:        "key_strengths",
				Type:        "[\"string\"]",
				Description: "Top 3-5 unique strengths",
				Required:    true,
			},
			{
				Name:        "critical_gaps",
				Type:        "[\"string\"]",
				Description: "Top 3-5 critical skill gaps",
				Required:    true,
			},
			{
				Name:        "experience_assessment",
				Type:        "\"string\"",
				Description: "Assessment of experience level and quality",
				Required:    true,
			},
			{
				Name:        "resume_quality_score",
				Type:        "number",
				Description: "Resume structure and presentation quality on a 1-10 scale",
				Required:    true,
			},
			{
				Name:        "specific_recommendations",
				Type:        "[\"string\"]",
				Description: "3-5 specific, actionable recommendations",
				Required:    true,
			},
		},
	}
}

// ImprovementAdviceSchema returns the extraction schema for targeted resume
// improvement advice.
func ImprovementAdviceSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ImprovementAdvice",
		Description: `You are an expert resume coach. Provide specific, actionable resume improvement advice
for the resume and target job below. Prefer concrete rewrites over general guidance.`,
		Fields: []SchemaField{
			{
				Name:        "summary_suggestions",
				Type:        "\"string\"",
				Description: "How to improve the summary/objective",
				Required:    true,
			},
			{
				Name:        "experience_improvements",
				Type:        "\"string\"",
				Description: "Specific improvements for the work experience section",
				Required:    true,
			},
			{
				Name:        "skills_section_tips",
				Type:        "\"string\"",
				Description: "How to better present skills",
				Required:    true,
			},
			{
				Name:        "keyword_optimization",
				Type:        "\"string\"",
				Description: "Important keywords to add",
				Required:    true,
			},
			{
				Name:        "formatting_tips",
				Type:        "\"string\"",
				Description: "Formatting and structure suggestions",
				Required:    true,
			},
		},
	}
}
