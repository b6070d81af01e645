package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaClient completes prompts against a locally served Ollama instance.
type OllamaClient struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	model      string
}

// NewOllamaClient creates a new Ollama completion client.
func NewOllamaClient(httpClient *http.Client, baseURL, model string) *OllamaClient {
	return &OllamaClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		model:      model,
	}
}

// Name returns the provider's display name.
func (c *OllamaClient) Name() string { return "Ollama" }

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Complete submits the prompt to the generate endpoint with streaming
// disabled and returns the full response text.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateOptions{Temperature: defaultTemperature},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, result.Error)
		}
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return result.Response, nil
}
