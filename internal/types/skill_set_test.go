package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_AddDeduplicatesCaseInsensitively(t *testing.T) {
	set := NewSkillSet("Python", "python", "PYTHON")

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{"Python"}, set.Labels())
}

func TestSkillSet_FirstCanonicalFormWins(t *testing.T) {
	set := NewSkillSet()
	set.Add("rest api")
	set.Add("Rest Api")

	assert.Equal(t, []string{"rest api"}, set.Labels())
}

func TestSkillSet_IgnoresEmptyAndWhitespace(t *testing.T) {
	set := NewSkillSet("", "  ", "Go")

	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Has(""))
}

func TestSkillSet_HasTrims(t *testing.T) {
	set := NewSkillSet("Docker")

	assert.True(t, set.Has("docker"))
	assert.True(t, set.Has("  Docker  "))
	assert.False(t, set.Has("Podman"))
}

func TestSkillSet_LabelsSorted(t *testing.T) {
	set := NewSkillSet("Zig", "Ada", "Go")

	assert.Equal(t, []string{"Ada", "Go", "Zig"}, set.Labels())
}

func TestSkillSet_JSONRoundTrip(t *testing.T) {
	set := NewSkillSet("Python", "Docker")

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["Docker","Python"]`, string(data))

	var decoded SkillSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Has("Python"))
	assert.True(t, decoded.Has("Docker"))
	assert.Equal(t, 2, decoded.Len())
}

func TestSkillSet_UnmarshalRejectsNonArray(t *testing.T) {
	var set SkillSet
	assert.Error(t, json.Unmarshal([]byte(`{"skill":"Python"}`), &set))
}
