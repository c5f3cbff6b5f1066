package factory

import (
	"context"
	"testing"

	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/gemini"
	"expert-session-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("gemini without key", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, ProviderConfig{Provider: "gemini"})
		assert.Nil(t, p)
		assert.ErrorIs(t, err, llm.ErrMissingCredential)
	})

	t.Run("gemini with key", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, ProviderConfig{Provider: "gemini", GeminiKey: "k", Model: "gemini-2.5-flash"})
		require.NoError(t, err)
		assert.IsType(t, &gemini.GeminiProvider{}, p)
	})

	t.Run("ollama defaults", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, ProviderConfig{Provider: "ollama"})
		require.NoError(t, err)
		op, ok := p.(*ollama.OllamaProvider)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:11434", op.BaseURL)
		assert.Equal(t, ollama.DefaultModel, op.ModelName)
	})

	t.Run("ollama explicit model", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, ProviderConfig{Provider: "ollama", Model: "qwen2.5"})
		require.NoError(t, err)
		assert.Equal(t, "qwen2.5", p.(*ollama.OllamaProvider).ModelName)
	})

	t.Run("huggingface without key", func(t *testing.T) {
		_, err := NewLLMProvider(ctx, ProviderConfig{Provider: "huggingface"})
		assert.ErrorIs(t, err, llm.ErrMissingCredential)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMProvider(ctx, ProviderConfig{Provider: "openai"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, llm.ErrMissingCredential)
	})
}
