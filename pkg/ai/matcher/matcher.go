// Package matcher ranks marketplace experts against a free-text request by
// asking the language model for an ordered list of ids. It never fails: any
// problem with the model yields the first candidates in input order.
package matcher

import (
	"context"
	"encoding/json"
	"fmt"

	"expert-session-be/internal/constant"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/pkg/ai/parser"
	"expert-session-be/pkg/llm"

	"github.com/samber/lo"
)

const logModule = "MATCHER"

// Candidate is the slice of an expert record the model gets to see.
type Candidate struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Bio    string   `json:"bio"`
	Tags   []string `json:"tags"`
}

type Result struct {
	IDs    []string
	Source string
}

type Matcher struct {
	provider llm.LLMProvider
	log      logger.ILogger
	limit    int
}

// NewMatcher takes a nil provider to mean "no credential configured".
func NewMatcher(provider llm.LLMProvider, log logger.ILogger) *Matcher {
	return &Matcher{
		provider: provider,
		log:      log,
		limit:    constant.MaxMatchResults,
	}
}

// FindBestMatches returns up to three candidate ids ordered by relevance.
func (m *Matcher) FindBestMatches(ctx context.Context, query string, candidates []Candidate) []string {
	return m.Match(ctx, query, candidates).IDs
}

// Match is FindBestMatches plus the provenance of the answer.
func (m *Matcher) Match(ctx context.Context, query string, candidates []Candidate) Result {
	if len(candidates) == 0 {
		return Result{IDs: []string{}, Source: constant.SourceEmpty}
	}

	if m.provider == nil {
		m.log.Warn(logModule, "API key not set, using fallback ranking", map[string]interface{}{
			"candidates": len(candidates),
		})
		return m.fallback(candidates, constant.SourceFallbackNoKey)
	}

	prompt, err := BuildPrompt(query, candidates, m.limit)
	if err != nil {
		m.log.Error(logModule, "Failed to build match prompt", map[string]interface{}{"error": err.Error()})
		return m.fallback(candidates, constant.SourceFallbackParse)
	}

	raw, err := m.provider.Generate(ctx, prompt,
		llm.WithTemperature(0),
		llm.WithResponseSchema(ResponseSchema()),
	)
	if err != nil {
		m.log.Error(logModule, "Error matching experts", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return m.fallback(candidates, constant.SourceFallbackTransport)
	}

	ids, err := parser.Decode[[]string](raw)
	if err != nil {
		m.log.Error(logModule, "Unparsable match response", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return m.fallback(candidates, constant.SourceFallbackParse)
	}

	ranked := sanitize(ids, candidates, m.limit)
	m.log.Debug(logModule, "Experts matched", map[string]interface{}{
		"query":    query,
		"returned": len(ids),
		"kept":     len(ranked),
	})
	return Result{IDs: ranked, Source: constant.SourceModel}
}

// BuildPrompt embeds the serialized candidates and the query.
func BuildPrompt(query string, candidates []Candidate, limit int) (string, error) {
	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}
	return fmt.Sprintf(constant.ExpertMatchPromptV1, query, string(candidatesJSON), limit), nil
}

// ResponseSchema is array<string>.
func ResponseSchema() *llm.Schema {
	return llm.ArrayOf(llm.StringSchema())
}

func (m *Matcher) fallback(candidates []Candidate, source string) Result {
	n := min(m.limit, len(candidates))
	ids := lo.Map(candidates[:n], func(c Candidate, _ int) string { return c.ID })
	return Result{IDs: ids, Source: source}
}

// sanitize keeps the model's order but drops unknown and repeated ids, then
// caps the list.
func sanitize(ids []string, candidates []Candidate, limit int) []string {
	known := lo.SliceToMap(candidates, func(c Candidate) (string, struct{}) { return c.ID, struct{}{} })
	kept := lo.Uniq(lo.Filter(ids, func(id string, _ int) bool {
		_, ok := known[id]
		return ok
	}))
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
