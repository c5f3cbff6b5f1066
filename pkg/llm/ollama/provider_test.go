package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expert-session-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerateWithSchema(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"[\"e1\"]"},"done":true}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	out, err := p.Generate(context.Background(), "match",
		llm.WithResponseSchema(llm.ArrayOf(llm.StringSchema())),
		llm.WithMaxTokens(64),
	)

	require.NoError(t, err)
	assert.Equal(t, `["e1"]`, out)
	assert.Equal(t, "llama3", got["model"])
	assert.Equal(t, false, got["stream"])
	assert.Equal(t, map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}, got["format"])
	assert.Equal(t, float64(64), got["options"].(map[string]interface{})["num_predict"])
}

func TestOllamaJSONModeAndRoleMapping(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"{}"}}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "q"},
		{Role: "model", Content: "a"},
	}, llm.WithJSONResponse(), llm.WithModel("qwen2.5"))

	require.NoError(t, err)
	assert.Equal(t, "json", got.Format)
	assert.Equal(t, "qwen2.5", got.Model)
	assert.Equal(t, "assistant", got.Messages[1].Role)
}

func TestOllamaStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing")
	_, err := p.Generate(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestNewOllamaProviderDefaults(t *testing.T) {
	p := NewOllamaProvider("", "")
	assert.Equal(t, DefaultBaseURL, p.BaseURL)
	assert.Equal(t, DefaultModel, p.ModelName)

	p = NewOllamaProvider("http://gpu-box:11434", "qwen2.5")
	assert.Equal(t, "http://gpu-box:11434", p.BaseURL)
	assert.Equal(t, "qwen2.5", p.ModelName)
}
