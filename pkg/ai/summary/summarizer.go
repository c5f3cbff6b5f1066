package summary

import (
	"context"
	"errors"
	"fmt"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/pkg/ai/parser"
	"expert-session-be/pkg/llm"
)

const logModule = "SUMMARIZER"

var errNullSummary = errors.New("model returned null summary")

// Summary is the structured result. ActionItems is never nil.
type Summary struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"actionItems"`
}

type Result struct {
	Summary
	Source string
}

type Summarizer struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

// NewSummarizer takes a nil provider to mean "no credential configured".
func NewSummarizer(provider llm.LLMProvider, log logger.ILogger) *Summarizer {
	return &Summarizer{provider: provider, log: log}
}

// GenerateSessionSummary always returns a usable summary; failures are
// logged and replaced by fixed fallback text.
func (s *Summarizer) GenerateSessionSummary(ctx context.Context, transcript string) Summary {
	return s.Summarize(ctx, transcript).Summary
}

func (s *Summarizer) Summarize(ctx context.Context, transcript string) Result {
	if s.provider == nil {
		s.log.Warn(logModule, "API key not set, returning placeholder summary", nil)
		return Result{
			Summary: Summary{Summary: constant.SummaryMissingCredential, ActionItems: []string{}},
			Source:  constant.SourceFallbackNoKey,
		}
	}

	raw, err := s.provider.Generate(ctx, BuildPrompt(transcript),
		llm.WithTemperature(0.3),
		llm.WithResponseSchema(ResponseSchema()),
	)
	if err != nil {
		s.log.Error(logModule, "Error generating summary", map[string]interface{}{
			"error":             err.Error(),
			"transcript_length": len(transcript),
		})
		return failed(constant.SourceFallbackTransport)
	}

	out, err := parse(raw)
	if err != nil {
		s.log.Error(logModule, "Unparsable summary response", map[string]interface{}{
			"error": err.Error(),
		})
		return failed(constant.SourceFallbackParse)
	}

	s.log.Debug(logModule, "Summary generated", map[string]interface{}{
		"action_items": len(out.ActionItems),
	})
	return Result{Summary: out, Source: constant.SourceModel}
}

func BuildPrompt(transcript string) string {
	return fmt.Sprintf(constant.SessionSummaryPromptV1, transcript)
}

// ResponseSchema is {summary: string, actionItems: array<string>}.
func ResponseSchema() *llm.Schema {
	return llm.ObjectOf(
		llm.Property{Name: constant.SummaryJSONFieldSummary, Schema: llm.StringSchema(), Required: true},
		llm.Property{Name: constant.SummaryJSONFieldActionItem, Schema: llm.ArrayOf(llm.StringSchema()), Required: true},
	)
}

func parse(raw string) (Summary, error) {
	decoded, err := parser.Decode[*Summary](raw)
	if err != nil {
		return Summary{}, err
	}
	if decoded == nil {
		return Summary{}, errNullSummary
	}
	if decoded.ActionItems == nil {
		decoded.ActionItems = []string{}
	}
	return *decoded, nil
}

func failed(source string) Result {
	return Result{
		Summary: Summary{
			Summary:     constant.SummaryGenerationFailed,
			ActionItems: []string{constant.SummaryFailureActionItem},
		},
		Source: source,
	}
}
