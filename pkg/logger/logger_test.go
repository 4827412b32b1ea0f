package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			log, err := New(Config{Level: "warn", Format: format, Output: "stderr"})
			require.NoError(t, err)
			assert.False(t, log.Core().Enabled(zap.InfoLevel))
			assert.True(t, log.Core().Enabled(zap.WarnLevel))
		})
	}

	_, err := New(Config{Level: "verbose"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zap.InfoLevel,
		"DEBUG": zap.DebugLevel,
		"warn":  zap.WarnLevel,
		"error": zap.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fallback := zap.NewNop()
	reqLog := zap.New(core).With(zap.String("request_id", "r-1"))

	ctx := WithContext(context.Background(), reqLog)
	FromContext(ctx, fallback).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "r-1", logs.All()[0].ContextMap()["request_id"])
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}
