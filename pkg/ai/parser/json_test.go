package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `["e1"]`, want: `["e1"]`},
		{name: "padded", raw: "  \n[\"e1\"]\n ", want: `["e1"]`},
		{name: "json fence", raw: "```json\n[\"e1\",\"e2\"]\n```", want: `["e1","e2"]`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "empty", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(CleanJSON(tt.raw)))
		})
	}
}

func TestDecode(t *testing.T) {
	ids, err := Decode[[]string]("```json\n[\"e3\",\"e1\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e1"}, ids)

	_, err = Decode[[]string]("")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = Decode[[]string]("I think e1 is best")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")

	_, err = Decode[[]string](`{"ids":["e1"]}`)
	require.Error(t, err)

	_, err = Decode[[]string](strings.Repeat("x", 500))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "...")
}
