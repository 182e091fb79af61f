package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// hfBaseURL is the Hugging Face Inference API endpoint (free tier).
const hfBaseURL = "https://api-inference.huggingface.co/models"

// hfRequestTimeout bounds a single inference call.
const hfRequestTimeout = 30 * time.Second

// HuggingFaceClient implements Client against the Hugging Face Inference
// API over plain HTTP.
type HuggingFaceClient struct {
	httpClient *http.Client
	config     *Config
	apiKey     string
	baseURL    string
}

// NewHuggingFaceClient creates a Hugging Face inference client.
func NewHuggingFaceClient(config *Config, apiKey string) (*HuggingFaceClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultHuggingFaceConfig()
	}

	return &HuggingFaceClient{
		httpClient: &http.Client{Timeout: hfRequestTimeout},
		config:     config,
		apiKey:     apiKey,
		baseURL:    hfBaseURL,
	}, nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

// GenerateContent generates text content using the specified model tier
func (c *HuggingFaceClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens:   1000,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + "/" + modelName
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return extractHFText(respBody)
}

// GenerateJSON generates JSON content using the specified model tier.
// The inference API has no JSON response mode, so the prompt must request
// JSON and code block wrappers are stripped from the output.
func (c *HuggingFaceClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *HuggingFaceClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *HuggingFaceClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// extractHFText handles the two response shapes the inference API returns:
// a list of generations or a single generation object.
func extractHFText(body []byte) (string, error) {
	var list []hfGeneration
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		if list[0].GeneratedText != "" {
			return list[0].GeneratedText, nil
		}
		if list[0].SummaryText != "" {
			return list[0].SummaryText, nil
		}
		return "", fmt.Errorf("no generated text in response")
	}

	var single hfGeneration
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}

	return "", fmt.Errorf("unexpected inference response: %s", string(body))
}
