package matcher

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/pkg/llm"
	"expert-session-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates() []Candidate {
	return []Candidate{
		{ID: "e1", Name: "Dr. Sarah Chen", Skills: []string{"Python", "Machine Learning"}, Tags: []string{"Tech"}},
		{ID: "e2", Name: "Marcus Thorne", Skills: []string{"HIIT", "Nutrition Planning"}, Tags: []string{"Fitness"}},
		{ID: "e3", Name: "Elena Rodriguez", Skills: []string{"Fundraising"}, Tags: []string{"Startup"}},
		{ID: "e4", Name: "James Wilson", Skills: []string{"Calculus"}, Tags: []string{"Math"}},
		{ID: "e5", Name: "Yuki Tanaka", Skills: []string{"SEO"}, Tags: []string{"Marketing"}},
	}
}

func TestMatchMissingCredential(t *testing.T) {
	m := NewMatcher(nil, logger.NewNopLogger())

	res := m.Match(context.Background(), "help me with calculus", candidates())

	assert.Equal(t, []string{"e1", "e2", "e3"}, res.IDs)
	assert.Equal(t, constant.SourceFallbackNoKey, res.Source)
}

func TestMatchTransportError(t *testing.T) {
	fake := &llmtest.FakeProvider{Err: errors.New("503 service unavailable")}
	m := NewMatcher(fake, logger.NewNopLogger())

	ids := m.FindBestMatches(context.Background(), "fitness", candidates())

	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)
	assert.Equal(t, 1, fake.Calls())
}

func TestMatchUnparsableResponse(t *testing.T) {
	for _, raw := range []string{"", "e4 is the best match", `{"ids":["e4"]}`} {
		fake := &llmtest.FakeProvider{Response: raw}
		res := NewMatcher(fake, logger.NewNopLogger()).Match(context.Background(), "math", candidates())

		assert.Equal(t, []string{"e1", "e2", "e3"}, res.IDs, "raw=%q", raw)
		assert.Equal(t, constant.SourceFallbackParse, res.Source)
	}
}

func TestMatchFallbackShortList(t *testing.T) {
	m := NewMatcher(nil, logger.NewNopLogger())
	ids := m.FindBestMatches(context.Background(), "x", candidates()[:2])
	assert.Equal(t, []string{"e1", "e2"}, ids)
}

func TestMatchEmptyCandidates(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: `["e1"]`}
	res := NewMatcher(fake, logger.NewNopLogger()).Match(context.Background(), "x", nil)

	assert.NotNil(t, res.IDs)
	assert.Empty(t, res.IDs)
	assert.Zero(t, fake.Calls())
}

func TestMatchRoundTrip(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: "```json\n[\"e4\", \"e1\", \"e3\"]\n```"}
	res := NewMatcher(fake, logger.NewNopLogger()).Match(context.Background(), "math tutor", candidates())

	assert.Equal(t, []string{"e4", "e1", "e3"}, res.IDs)
	assert.Equal(t, constant.SourceModel, res.Source)
}

func TestMatchSanitizesModelOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "unknown ids dropped", raw: `["e9","e2","x"]`, want: []string{"e2"}},
		{name: "duplicates dropped", raw: `["e2","e2","e5"]`, want: []string{"e2", "e5"}},
		{name: "capped at three", raw: `["e5","e4","e3","e2","e1"]`, want: []string{"e5", "e4", "e3"}},
		{name: "empty array", raw: `[]`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &llmtest.FakeProvider{Response: tt.raw}
			ids := NewMatcher(fake, logger.NewNopLogger()).FindBestMatches(context.Background(), "q", candidates())
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatchResultsAlwaysInCandidateList(t *testing.T) {
	known := map[string]bool{}
	for _, c := range candidates() {
		known[c.ID] = true
	}

	responses := []string{`["e1"]`, `["zz","e3","e3","e1","e2","e4"]`, `nonsense`, `null`}
	for _, raw := range responses {
		ids := NewMatcher(&llmtest.FakeProvider{Response: raw}, logger.NewNopLogger()).
			FindBestMatches(context.Background(), "anything", candidates())

		assert.LessOrEqual(t, len(ids), 3)
		for _, id := range ids {
			assert.True(t, known[id], "unexpected id %q for %q", id, raw)
		}
	}
}

func TestMatchRequestShape(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: `["e1"]`}
	NewMatcher(fake, logger.NewNopLogger()).Match(context.Background(), "learn ML", candidates())

	prompt := fake.LastPrompt()
	assert.Contains(t, prompt, `User Request: "learn ML"`)
	assert.Contains(t, prompt, `"id":"e1"`)
	assert.Contains(t, prompt, "top 3 experts")

	opts := fake.LastOptions()
	assert.True(t, opts.JSONResponse)
	require.NotNil(t, opts.ResponseSchema)
	assert.Equal(t, llm.TypeArray, opts.ResponseSchema.Type)
	assert.Equal(t, llm.TypeString, opts.ResponseSchema.Items.Type)
}

func TestBuildPromptSerializesOnlyMatchFields(t *testing.T) {
	prompt, err := BuildPrompt("q", candidates()[:1], 3)
	require.NoError(t, err)

	start := strings.Index(prompt, "[")
	end := strings.LastIndex(prompt, "]")
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(prompt[start:end+1]), &decoded))

	require.Len(t, decoded, 1)
	keys := make([]string, 0, len(decoded[0]))
	for k := range decoded[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "name", "skills", "bio", "tags"}, keys)
}

func TestMatchConcurrentCalls(t *testing.T) {
	fake := &llmtest.FakeProvider{Response: `["e2","e1"]`}
	m := NewMatcher(fake, logger.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"e2", "e1"}, m.FindBestMatches(context.Background(), "q", candidates()))
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, fake.Calls())
}
