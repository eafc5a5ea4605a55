package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel, format string) (*StyleLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewLogger(&LoggerConfig{
		Level:  level,
		Format: format,
		Output: buf,
	})
	return logger, buf
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input       string
		expected    LogLevel
		expectError bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, "text")
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, nil, "visible warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warning")
}

func TestJSONOutputCarriesFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "json")
	ctx := context.Background()

	logger.WithComponent("merge").
		With("stylesheet", "app.css").
		Error(ctx, errors.New("boom"), "merge failed", "line", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))

	assert.Equal(t, "merge failed", entry["msg"])
	assert.Equal(t, "merge", entry["component"])
	assert.Equal(t, "app.css", entry["stylesheet"])
	assert.Equal(t, "boom", entry["error"])
	assert.EqualValues(t, 3, entry["line"])
}

func TestDanglingFieldIsDropped(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "logfmt")
	logger.Info(context.Background(), "odd fields", "key", "value", "dangling")

	out := buf.String()
	assert.Contains(t, out, "key=value")
	assert.NotContains(t, out, "dangling")
}

func TestNopLogger(t *testing.T) {
	logger := Nop()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), errors.New("x"), "discarded")
	})
}

func TestPerfLogger(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, "logfmt")
	ctx := context.Background()

	StartOperation(logger, "install").End(ctx)
	StartOperation(logger, "load").EndWithError(ctx, errors.New("missing"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "operation=install")
	assert.Contains(t, lines[0], "duration_ms=")
	assert.Contains(t, lines[1], "operation=load")
	assert.Contains(t, lines[1], "error=missing")
}
