package sink_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simonhull/cfx/sink"
	"github.com/simonhull/cfx/timestamp"
	"github.com/simonhull/cfx/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_WithWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	f, err := sink.NewFile(sink.FileConfig{Path: path, Plain: true})
	require.NoError(t, err)

	at := time.Date(2024, time.May, 1, 8, 30, 0, 0, time.UTC)
	w, err := writer.New(&writer.Options{Sink: f, Formatter: timestamp.Fixed(at)})
	require.NoError(t, err)
	w.PrependTime = true

	// File has no Warn, so the call lands in Log.
	require.NoError(t, w.Warn("low disk"))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-05-01 08:30:00]   low disk  \n", string(content))
}

func TestConsoleSink_OpaqueRendering(t *testing.T) {
	var stdout bytes.Buffer
	w, err := writer.New(&writer.Options{Sink: sink.NewConsole(&stdout, nil)})
	require.NoError(t, err)

	require.NoError(t, w.Log("[bo]n[re] =", map[string]int{"a": 1}))
	assert.Equal(t, "\x1b[1mn\x1b[0m = map[a:1]\n", stdout.String())
}
