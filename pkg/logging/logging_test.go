package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestNamedAndWith(t *testing.T) {
	log := New("error")

	named := log.Named("dataset")
	require.NotNil(t, named)
	assert.NotSame(t, log, named)

	scoped := named.With("component", "test")
	require.NotNil(t, scoped)

	// exercising each level must not panic on a derived logger
	scoped.Debug("debug", "k", "v")
	scoped.Info("info")
	scoped.Warn("warn")
	scoped.Error("error", "k", 1)
}
