package summary

import (
	"context"
	"errors"
	"testing"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transcript = `Expert: Let's look at your useEffect dependencies.
Client: Should I use useMemo?
Expert: Exactly. Wrap that config object in useMemo.`

func TestSummarizeMissingCredential(t *testing.T) {
	res := NewSummarizer(nil, logger.NewNopLogger()).Summarize(context.Background(), transcript)

	assert.Equal(t, "API Key missing.", res.Summary.Summary)
	assert.NotNil(t, res.ActionItems)
	assert.Empty(t, res.ActionItems)
	assert.Equal(t, constant.SourceFallbackNoKey, res.Source)
}

func TestSummarizeTransportError(t *testing.T) {
	fake := &llmtest.FakeProvider{Err: errors.New("connection reset")}
	out := NewSummarizer(fake, logger.NewNopLogger()).GenerateSessionSummary(context.Background(), transcript)

	assert.Equal(t, "Failed to generate summary.", out.Summary)
	assert.Equal(t, []string{"Check server logs for errors."}, out.ActionItems)
}

func TestSummarizeParseFailures(t *testing.T) {
	for _, raw := range []string{"", "Here is your summary: all good", `["a","b"]`, "null"} {
		res := NewSummarizer(&llmtest.FakeProvider{Response: raw}, logger.NewNopLogger()).
			Summarize(context.Background(), transcript)

		assert.Equal(t, constant.SummaryGenerationFailed, res.Summary.Summary, "raw=%q", raw)
		assert.Len(t, res.ActionItems, 1)
		assert.Equal(t, constant.SourceFallbackParse, res.Source)
	}
}

func TestSummarizeRoundTrip(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: `{"summary":"Reviewed React re-render issues.","actionItems":["Wrap config in useMemo","Use stable keys"]}`}
	res := NewSummarizer(fake, logger.NewNopLogger()).Summarize(context.Background(), transcript)

	assert.Equal(t, Summary{
		Summary:     "Reviewed React re-render issues.",
		ActionItems: []string{"Wrap config in useMemo", "Use stable keys"},
	}, res.Summary)
	assert.Equal(t, constant.SourceModel, res.Source)
}

func TestSummarizeFillsMissingActionItems(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: "```json\n{\"summary\":\"Short call.\"}\n```"}
	out := NewSummarizer(fake, logger.NewNopLogger()).GenerateSessionSummary(context.Background(), transcript)

	assert.Equal(t, "Short call.", out.Summary)
	assert.NotNil(t, out.ActionItems)
	assert.Empty(t, out.ActionItems)
}

func TestSummarizeRequestShape(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: `{"summary":"s","actionItems":[]}`}
	NewSummarizer(fake, logger.NewNopLogger()).Summarize(context.Background(), transcript)

	assert.Contains(t, fake.LastPrompt(), "concise summary and a list of action items")
	assert.Contains(t, fake.LastPrompt(), "useMemo")

	opts := fake.LastOptions()
	require.NotNil(t, opts.ResponseSchema)
	assert.Equal(t, llm.TypeObject, opts.ResponseSchema.Type)
	assert.Equal(t, llm.TypeString, opts.ResponseSchema.Properties["summary"].Type)
	assert.Equal(t, llm.TypeArray, opts.ResponseSchema.Properties["actionItems"].Type)
	assert.Equal(t, []string{"summary", "actionItems"}, opts.ResponseSchema.Order)
}

func TestSummarizeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &llmtest.FakeProvider{Response: `{"summary":"s","actionItems":[]}`}
	res := NewSummarizer(fake, logger.NewNopLogger()).Summarize(ctx, transcript)

	assert.Equal(t, constant.SourceFallbackTransport, res.Source)
	assert.Equal(t, constant.SummaryGenerationFailed, res.Summary.Summary)
}
