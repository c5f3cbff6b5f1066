package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("MATCHER", "matched experts", map[string]interface{}{"count": 3})
	l.Warn("MATCHER", "no details", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "MATCHER", first["module"])
	assert.Equal(t, map[string]interface{}{"count": 3}, first["details"])

	second := entries[1].ContextMap()
	assert.Equal(t, map[string]interface{}{}, second["details"])
}

func TestZapLoggerErrorRef(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("SUMMARIZER", "boom", map[string]interface{}{"error": "timeout"})

	entries := logs.FilterMessage("boom").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "timeout", entries[0].ContextMap()["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("X", "ignored", nil)
	assert.NoError(t, l.Sync())
}
