package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"taskType": "analyze-market-gaps"})

	log.Info("query executed", map[string]interface{}{
		"rowCount": 3,
		"mode":     "VULNERABILITY",
	})
	log.WithError(errors.New("boom")).Warn("cache write failed", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "analyze-market-gaps", ctx["taskType"])
	assert.Equal(t, int64(3), ctx["rowCount"])
	assert.Equal(t, "VULNERABILITY", ctx["mode"])

	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestToZapFields_ErrorValue(t *testing.T) {
	fields := toZapFields(map[string]interface{}{"error": errors.New("x")})
	assert.Len(t, fields, 1)
	assert.Equal(t, zapcore.ErrorType, fields[0].Type)
	assert.Equal(t, "error", fields[0].Key)
}

func TestNoOpLogger(t *testing.T) {
	log := NewNoOpLogger()
	assert.NotPanics(t, func() {
		log.Debug("ignored", nil)
		log.WithFields(map[string]interface{}{"a": 1}).Error("ignored", nil)
	})
}
