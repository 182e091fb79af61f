// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultEmbeddingDims is the hashed-embedder vector size used when no
// override is configured.
const DefaultEmbeddingDims = 256

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file
	Output string `json:"output,omitempty"` // Path to write the JSON report (default stdout)

	// Providers
	GeminiAPIKey      string `json:"gemini_api_key,omitempty"`       // Gemini API key
	HuggingFaceAPIKey string `json:"hugging_face_api_key,omitempty"` // Hugging Face Inference API key

	// Behavior
	EmbeddingDims int    `json:"embedding_dims,omitempty"` // Hashed embedder vector size
	DefaultRole   string `json:"default_role,omitempty"`   // Role used when classification finds nothing
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed analysis boxes
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.EmbeddingDims < 0 {
		return fmt.Errorf("config error: 'embedding_dims' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.HuggingFaceAPIKey == "" {
		result.HuggingFaceAPIKey = defaults.HuggingFaceAPIKey
	}
	if result.DefaultRole == "" {
		result.DefaultRole = defaults.DefaultRole
	}

	// Int fields: use default if zero
	if result.EmbeddingDims == 0 {
		if defaults.EmbeddingDims > 0 {
			result.EmbeddingDims = defaults.EmbeddingDims
		} else {
			result.EmbeddingDims = DefaultEmbeddingDims
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
