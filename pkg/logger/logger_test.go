package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Options{Output: &buf, Level: level, Format: "json"}), &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "FATAL", LevelFatal.String())
}

func TestLogger_WritesStructuredJSON(t *testing.T) {
	log, buf := newBuffered(LevelInfo)

	log.With(Component("logic")).Info("command executed",
		CommandWord("mark"), GroupName("TUT04"), Week(3), Err(errors.New("boom")))
	log.Debug("hidden")

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "command executed", e["message"])
	assert.Equal(t, "logic", e["component"])
	assert.Equal(t, "mark", e["command"])
	assert.Equal(t, "TUT04", e["group"])
	assert.Equal(t, float64(3), e["week"])
	assert.Equal(t, "boom", e["error"])
	assert.NotEmpty(t, e["timestamp"])
}

func TestLogger_WithLevel(t *testing.T) {
	log, buf := newBuffered(LevelInfo)

	quiet := log.WithLevel(LevelError)
	quiet.Warn("dropped")
	quiet.Error("kept")
	assert.False(t, quiet.Enabled(LevelWarn))

	verbose := log.WithLevel(LevelDebug)
	verbose.Debug("debug kept")
	assert.True(t, verbose.Enabled(LevelDebug))

	entries := lines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0]["message"])
	assert.Equal(t, "debug kept", entries[1]["message"])
}

func TestLogger_Context(t *testing.T) {
	log, buf := newBuffered(LevelInfo)
	ctx := WithContext(context.Background(), log.WithRequestID("req-1"))

	FromContext(ctx).Info("loaded persons", Count("persons", 7))

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0][RequestIDKey])
	assert.Equal(t, "loaded persons", entries[0]["message"])
	assert.EqualValues(t, 7, entries[0]["persons"])

	assert.False(t, FromContext(context.Background()).Enabled(LevelError), "no logger in context discards")
}

func TestLogger_FileRotationTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.log")
	log := New(Options{Level: LevelInfo, File: FileOptions{Path: path}})
	log.Info("to file", Backend("json"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backend":"json"`)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("nothing happens")
	assert.False(t, log.Enabled(LevelError))
}
