package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"resume": "resume.txt",
		"job": "job.txt",
		"gemini_api_key": "test-key",
		"embedding_dims": 512,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "job.txt", cfg.Job)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 512, cfg.EmbeddingDims)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeEmbeddingDims(t *testing.T) {
	cfg := &Config{EmbeddingDims: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "embedding_dims")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: "/nonexistent/job.txt"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	job := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resume, []byte("resume"), 0644))
	require.NoError(t, os.WriteFile(job, []byte("job"), 0644))

	cfg := &Config{Resume: resume, Job: job}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	defaults := Config{
		Resume:            "default.txt",
		Job:               "job.txt",
		GeminiAPIKey:      "key",
		HuggingFaceAPIKey: "hf-key",
		DefaultRole:       "Backend Developer",
		EmbeddingDims:     1024,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "mine.txt", merged.Resume)

	// Default values should fill in empty fields
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, "key", merged.GeminiAPIKey)
	assert.Equal(t, "hf-key", merged.HuggingFaceAPIKey)
	assert.Equal(t, "Backend Developer", merged.DefaultRole)
	assert.Equal(t, 1024, merged.EmbeddingDims)
}

func TestMergeWithDefaults_EmbeddingDimsFallback(t *testing.T) {
	cfg := Config{}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, DefaultEmbeddingDims, merged.EmbeddingDims)
}
