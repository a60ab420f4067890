package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitOnce(t *testing.T) {
	require.NoError(t, Init(zapcore.InfoLevel, zap.String("service", "logger-test")))
	first := Log
	require.NotNil(t, first)

	require.NoError(t, Init(zapcore.DebugLevel))
	assert.Same(t, first, Log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}
