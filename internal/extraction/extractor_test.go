package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_BasicVocabulary(t *testing.T) {
	extractor := NewExtractor(nil)

	skills := extractor.Extract("Experienced in Python, Docker, and REST API design. Uses Git daily.")

	assert.True(t, skills.Has("Python"))
	assert.True(t, skills.Has("Docker"))
	assert.True(t, skills.Has("Rest Api"))
	assert.True(t, skills.Has("Git"))
	assert.False(t, skills.Has("Java"))
}

func TestExtractor_Extract_WholeWordsOnly(t *testing.T) {
	extractor := NewExtractor(nil)

	// "javascript" must not produce a "java" match; "gone" must not match "go".
	skills := extractor.Extract("JavaScript developer, gone through many frameworks")

	assert.True(t, skills.Has("Javascript"))
	assert.False(t, skills.Has("Java"))
	assert.False(t, skills.Has("Go"))
}

func TestExtractor_Extract_CaseInsensitive(t *testing.T) {
	extractor := NewExtractor(nil)

	skills := extractor.Extract("PYTHON and kubernetes")

	assert.True(t, skills.Has("Python"))
	assert.True(t, skills.Has("Kubernetes"))
}

func TestExtractor_Extract_EmptyText(t *testing.T) {
	extractor := NewExtractor(nil)

	skills := extractor.Extract("")

	assert.Zero(t, skills.Len())
}

func TestExtractor_Extract_SoftSkills(t *testing.T) {
	extractor := NewExtractor(nil)

	skills := extractor.Extract("Strong leadership and problem solving abilities")

	assert.True(t, skills.Has("Leadership"))
	assert.True(t, skills.Has("Problem Solving"))
}

func TestExtractor_Extract_Deterministic(t *testing.T) {
	extractor := NewExtractor(nil)
	text := "Python, SQL, AWS, machine learning, communication"

	first := extractor.Extract(text).Labels()
	second := extractor.Extract(text).Labels()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestExtractor_SegmenterEnrichment(t *testing.T) {
	plain := NewExtractor(nil)
	segmented := NewExtractor(DelimiterSegmenter{})

	text := "Built services with postgresql and elasticsearch"

	plainSkills := plain.Extract(text)
	segmentedSkills := segmented.Extract(text)

	// The phrase pass can only add skills, never remove them.
	for _, label := range plainSkills.Labels() {
		assert.True(t, segmentedSkills.Has(label))
	}
}

func TestDelimiterSegmenter_Segment(t *testing.T) {
	phrases := DelimiterSegmenter{}.Segment("Python, SQL; worked with Docker and Kubernetes")

	require.NotEmpty(t, phrases)
	assert.Contains(t, phrases, "python")
	assert.Contains(t, phrases, "sql")
	assert.Contains(t, phrases, "docker")
	assert.Contains(t, phrases, "kubernetes")
	assert.NotContains(t, phrases, "")
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"rest api", "Rest Api"},
		{"ci/cd", "Ci/Cd"},
		{"node.js", "Node.Js"},
		{"c++", "C++"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in), tt.in)
	}
}
