// Package ai provides the language-model side of the assistant: completion
// clients for a hosted API (OpenAI) and a locally served model (Ollama),
// plus the intent classifier and reply generator built on top of them.
package ai

import (
	"context"
	"fmt"
	"net/http"

	"aurum/internal/config"
)

// Completer submits a prompt to a language model and returns the raw
// completion text. Outputs may vary between identical inputs depending on
// sampling temperature; callers must not assume determinism.
type Completer interface {
	// Name returns the provider's display name (e.g., "OpenAI", "Ollama").
	Name() string

	// Complete submits the prompt and returns the model's text output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter builds the configured completion provider. The provider is
// selected once at process start; swapping backends is a deployment-time
// configuration choice.
func NewCompleter(cfg *config.Config) (Completer, error) {
	httpClient := &http.Client{Timeout: cfg.AIRequestTimeout}

	switch cfg.AIProvider {
	case "openai":
		return NewOpenAIClient(httpClient, cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "ollama":
		return NewOllamaClient(httpClient, cfg.OllamaBaseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}
