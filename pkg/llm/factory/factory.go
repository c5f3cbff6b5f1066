package factory

import (
	"context"
	"fmt"

	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/gemini"
	"expert-session-be/pkg/llm/huggingface"
	"expert-session-be/pkg/llm/ollama"
)

// ProviderConfig carries everything a backend may need. Credentials are
// passed in explicitly; nothing here reads the environment.
type ProviderConfig struct {
	Provider  string // "gemini" | "ollama" | "huggingface"
	Model     string
	BaseURL   string
	GeminiKey string
	HFKey     string
}

// NewLLMProvider leaves an empty Model to the backend's own default. It
// returns llm.ErrMissingCredential (unwrapped) when the chosen backend needs a
// key that is not set. Callers treat that as a normal, degraded mode rather
// than a startup failure.
func NewLLMProvider(ctx context.Context, cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		p, err := gemini.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model), nil
	case "huggingface":
		p, err := huggingface.NewHuggingFaceProvider(cfg.HFKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
