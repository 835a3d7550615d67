package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"Info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{" warning ", slog.LevelWarn, true},
		{"ERROR", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func decodeLines(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestNew_LevelAndSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "run-1")

	logger.Info("dropped")
	logger.Warn("kept", "glyph", "あ")

	recs := decodeLines(t, buf.String())
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0]["msg"])
	assert.Equal(t, "run-1", recs[0]["session_id"])
	assert.Equal(t, "あ", recs[0]["glyph"])
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty", "")
	logger.Debug("hidden")

	recs := decodeLines(t, buf.String())
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
	assert.Equal(t, "chatty", recs[0]["configured_level"])
	assert.NotContains(t, recs[0], "session_id")
}

func TestSetup_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kanacards.log")

	logger, closer, err := Setup(Options{Level: "debug", File: path, SessionID: "abc"})
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	recs := decodeLines(t, string(raw))
	require.Len(t, recs, 1)
	assert.Equal(t, "hello", recs[0]["msg"])
	assert.Equal(t, "abc", recs[0]["session_id"])
}

func TestSetup_Discard(t *testing.T) {
	logger, closer, err := Setup(Options{Level: "debug"})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer.Close())
}
