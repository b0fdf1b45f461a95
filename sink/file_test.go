package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFile_RequiresPath(t *testing.T) {
	_, err := NewFile(FileConfig{})
	assert.Error(t, err)
}

func TestFile_WritesLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "cfx.log")

	f, err := NewFile(FileConfig{Path: path})
	require.NoError(t, err)

	require.NoError(t, f.WriteRaw("[ts] "))
	require.NoError(t, f.Log("\x1b[1mhello\x1b[0m", 2))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[ts] \x1b[1mhello\x1b[0m 2\n", string(content))
}

func TestFile_Plain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.log")

	f, err := NewFile(FileConfig{Path: path, Plain: true, MaxSize: 1})
	require.NoError(t, err)

	require.NoError(t, f.WriteRaw("\x1b[37m[\x1b[0m12:00\x1b[37m]\x1b[0m "))
	require.NoError(t, f.Log("\x1b[41m\x1b[37m ", "boom", " \x1b[0m"))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[12:00]   boom  \n", string(content))
	assert.NotContains(t, string(content), "\x1b")
}

func TestNewFileWriter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFileWriter(&buf, false)

	require.NoError(t, f.Log("a", "b"))
	assert.Equal(t, "a b\n", buf.String())
	assert.NoError(t, f.Close())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestFile_WriteErrorWrapped(t *testing.T) {
	f := NewFileWriter(errWriter{}, false)
	err := f.Log("x")
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Contains(t, err.Error(), "writing log line")
}
