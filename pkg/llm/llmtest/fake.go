// Package llmtest provides a scripted llm.LLMProvider for tests.
package llmtest

import (
	"context"
	"sync"

	"expert-session-be/pkg/llm"
)

// FakeProvider returns Response/Err for every call and records what it was
// asked.
type FakeProvider struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
	options []llm.Options
}

var _ llm.LLMProvider = &FakeProvider{}

func (f *FakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(history) > 0 {
		f.prompts = append(f.prompts, history[len(history)-1].Content)
	}
	f.options = append(f.options, llm.Apply(llm.Options{}, opts...))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.Response, f.Err
}

func (f *FakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (f *FakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *FakeProvider) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func (f *FakeProvider) LastOptions() llm.Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.options) == 0 {
		return llm.Options{}
	}
	return f.options[len(f.options)-1]
}
