package llm

import (
	"context"
	"errors"
)

// ErrMissingCredential is returned by constructors when the provider needs an
// API key and none was configured.
var ErrMissingCredential = errors.New("llm: missing API credential")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model

	// JSONResponse asks the backend for application/json output.
	JSONResponse bool
	// ResponseSchema constrains the shape of the JSON output. Implies JSONResponse.
	ResponseSchema *Schema
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithJSONResponse() Option {
	return func(o *Options) {
		o.JSONResponse = true
	}
}

func WithResponseSchema(schema *Schema) Option {
	return func(o *Options) {
		o.JSONResponse = true
		o.ResponseSchema = schema
	}
}

// Apply folds opts over base and returns the result.
func Apply(base Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
