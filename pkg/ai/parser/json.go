package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyResponse = errors.New("empty model response")

// CleanJSON strips whitespace and a surrounding markdown code fence, which
// models tend to add even when asked for raw JSON.
func CleanJSON(raw string) []byte {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}

// Decode parses a model response into T.
func Decode[T any](raw string) (T, error) {
	var out T
	b := CleanJSON(raw)
	if len(b) == 0 {
		return out, ErrEmptyResponse
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("parse error: %w | raw: %s", err, truncate(string(b), 200))
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
