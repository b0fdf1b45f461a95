package sink

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestSlog_Levels(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlog(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, s.Log("plain"))
	require.NoError(t, s.Info("info"))
	require.NoError(t, s.Warn("warn"))
	require.NoError(t, s.Error("error"))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 4)

	levels := make([]string, len(entries))
	for i, e := range entries {
		levels[i] = e["level"].(string)
	}
	assert.Equal(t, []string{"INFO", "INFO", "WARN", "ERROR"}, levels)
}

func TestSlog_MessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	obj := map[string]int{"retries": 3}
	require.NoError(t, s.Error("\x1b[41m\x1b[37m ", "upload failed", " \x1b[0m", obj, true, nil))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "upload failed true <nil>", entry["msg"])
	assert.Equal(t, map[string]any{"retries": float64(3)}, entry["arg3"])
}

func TestSlog_RawDropped(t *testing.T) {
	var buf bytes.Buffer
	s := NewSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, s.WriteRaw("[12:00] "))
	assert.Zero(t, buf.Len())
}

func TestNewSlog_NilUsesDefault(t *testing.T) {
	s := NewSlog(nil)
	assert.Same(t, slog.Default(), s.logger)
}
