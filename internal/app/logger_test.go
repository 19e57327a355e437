package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFromString(t *testing.T) {
	assert.Equal(t, LogLevelDebug, LogLevelFromString("debug"))
	assert.Equal(t, LogLevelInfo, LogLevelFromString("INFO"))
	assert.Equal(t, LogLevelWarn, LogLevelFromString(" warning "))
	assert.Equal(t, LogLevelError, LogLevelFromString("error"))
	assert.Equal(t, LogLevelWarn, LogLevelFromString("nonsense"))
}

func TestLogger_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, &buf)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible %d", 1)
	logger.Error("also visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN: visible 1")
	assert.Contains(t, out, "ERROR: also visible")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelError, &buf)

	logger.Info("before")
	logger.SetLevel(LogLevelDebug)
	logger.Info("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "INFO: after")
}
