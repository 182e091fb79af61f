package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownTemplate(t *testing.T) {
	prompt, err := Get("advisory.json", "roadmap")

	require.NoError(t, err)
	assert.Contains(t, prompt, "90-day learning roadmap")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("nonexistent.json", "roadmap")

	assert.ErrorContains(t, err, "failed to read prompt file")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("advisory.json", "nonexistent-key")

	assert.ErrorContains(t, err, "not found")
}

func TestGet_CachedResultIsStable(t *testing.T) {
	first, err := Get("advisory.json", "suggestions")
	require.NoError(t, err)
	second, err := Get("advisory.json", "suggestions")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormat(t *testing.T) {
	template := "Recommendations for {{.TargetRole}} based on {{.Resume}}"

	result := Format(template, map[string]string{
		"TargetRole": "Backend Developer",
		"Resume":     "resume text",
	})

	assert.Equal(t, "Recommendations for Backend Developer based on resume text", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "No placeholders here",
		Format("No placeholders here", map[string]string{"Key": "Value"}))
}

func TestFormat_MissingKeyKeepsPlaceholder(t *testing.T) {
	assert.Equal(t, "Hello {{.TargetRole}}",
		Format("Hello {{.TargetRole}}", nil))
}
