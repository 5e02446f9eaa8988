package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("store written", "path", "/srv/.env")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output: %s", buf.String())
	assert.Equal(t, "store written", parsed["msg"])
	assert.Equal(t, "INFO", parsed["level"])
	assert.Equal(t, "/srv/.env", parsed["path"])
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("xml"),
		Output: &buf,
	})

	logger.Info("hello", "k", "v")

	var parsed map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &parsed), "text output should not be JSON")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNewDiscard_ProducesNoOutput(t *testing.T) {
	logger := NewDiscard()
	// Nothing to observe beyond not panicking.
	logger.Error("dropped")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelTrace(t *testing.T) {
	assert.Less(t, LevelTrace, slog.LevelDebug)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.Same(t, slog.Default(), FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, slog.Default(), FromContext(nil))
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), LevelTrace))
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}
	n, err := tw.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.Equal(t, len("line\n"), n)
}

func TestRedaction(t *testing.T) {
	tests := []struct {
		key   string
		value string
		mask  bool
	}{
		{"DB_PASSWORD", "hunter22", true},
		{"api_key", "abc", true},
		{"path", "/srv/.env", false},
		{"value", "ghp_0123456789", true},
		{"option", "APP_ENV", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := ShouldMask(tt.key) || ContainsTokenPrefix(tt.value)
			assert.Equal(t, tt.mask, got)
		})
	}

	assert.Equal(t, "********", MaskValue("abcd"))
	assert.Equal(t, "****2345", MaskValue("secret12345"))
	assert.True(t, strings.HasPrefix(MaskValue("ghp_abcdef"), "****"))
}
