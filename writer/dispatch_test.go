package writer

import (
	"errors"
	"testing"

	"github.com/simonhull/cfx/internal/testing/sinktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestLevels(t *testing.T) {
	tests := []struct {
		name   string
		call   func(w *StyleWriter) error
		method string
		open   string
	}{
		{
			name:   "error",
			call:   func(w *StyleWriter) error { return w.Error("x") },
			method: "error",
			open:   openError,
		},
		{
			name:   "warn",
			call:   func(w *StyleWriter) error { return w.Warn("x") },
			method: "warn",
			open:   openWarn,
		},
		{
			name:   "info",
			call:   func(w *StyleWriter) error { return w.Info("x") },
			method: "info",
			open:   openInfo,
		},
		{
			name:   "success routes to log",
			call:   func(w *StyleWriter) error { return w.Success("x") },
			method: "log",
			open:   openSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newRecorded(t)
			require.NoError(t, tt.call(w))

			call := rec.Last()
			assert.Equal(t, tt.method, call.Method)
			require.Len(t, call.Args, 3)
			assert.Equal(t, []any{tt.open, "x", reset}, call.Args)
		})
	}
}

func TestLevels_FallBackToLog(t *testing.T) {
	rec := sinktest.New()
	w, err := New(&Options{Sink: rec.LogOnly()})
	require.NoError(t, err)

	require.NoError(t, w.Error("e"))
	require.NoError(t, w.Warn("w"))
	require.NoError(t, w.Info("i"))

	assert.Equal(t, []string{"log", "log", "log"}, rec.Methods())
	assert.Equal(t, []any{openInfo, "i", reset}, rec.Last().Args)
}

func TestSuccess_BuildOK(t *testing.T) {
	w, rec := newRecorded(t)
	require.NoError(t, w.Success("Build OK"))

	call := rec.Last()
	assert.Equal(t, "log", call.Method)
	assert.Equal(t, []any{"\x1b[42m\x1b[30m ", "Build OK", " \x1b[0m"}, call.Args)
}

func TestLog(t *testing.T) {
	obj := &point{X: 1}
	m := map[string]any{"k": "v"}

	tests := []struct {
		name     string
		args     []any
		expected []any
	}{
		{
			name:     "no args",
			args:     nil,
			expected: []any{},
		},
		{
			name:     "tokens substituted",
			args:     []any{"[bo]b[re]", "[fred]r"},
			expected: []any{"\x1b[1mb\x1b[0m", "\x1b[31mr"},
		},
		{
			name:     "numbers become text",
			args:     []any{1, 2.5},
			expected: []any{"1", "2.5"},
		},
		{
			name:     "bool passes through",
			args:     []any{true},
			expected: []any{true},
		},
		{
			name:     "nil becomes text",
			args:     []any{nil},
			expected: []any{"<nil>"},
		},
		{
			name:     "opaque values not wrapped",
			args:     []any{"a", m, "b"},
			expected: []any{"a", m, "b"},
		},
		{
			name:     "opaque only",
			args:     []any{obj},
			expected: []any{obj},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newRecorded(t)
			require.NoError(t, w.Log(tt.args...))

			call := rec.Last()
			assert.Equal(t, "log", call.Method)
			assert.Equal(t, tt.expected, call.Args)
		})
	}
}

func TestLog_OpaqueIdentity(t *testing.T) {
	obj := &point{X: 1, Y: 2}
	w, rec := newRecorded(t)

	require.NoError(t, w.Log(obj))
	args := rec.Last().Args
	require.Len(t, args, 1)
	assert.Same(t, obj, args[0])
}

func TestLog_IgnoresLogStyle(t *testing.T) {
	w, rec := newRecorded(t)
	w.Styles[LevelLog] = "[bred]"

	require.NoError(t, w.Log("x"))
	assert.Equal(t, []any{"x"}, rec.Last().Args)
}

func TestStyledInterleave(t *testing.T) {
	a := &point{X: 1}
	b := &point{X: 2}
	errVal := errors.New("opaque error")

	tests := []struct {
		name     string
		args     []any
		expected []any
	}{
		{
			name:     "no args",
			args:     nil,
			expected: []any{openError, reset},
		},
		{
			name:     "opaque between strings",
			args:     []any{"a", a, "b"},
			expected: []any{openError, "a", reset, a, openError, "b", reset},
		},
		{
			name:     "leading opaque",
			args:     []any{a, "b"},
			expected: []any{openError, reset, a, openError, "b", reset},
		},
		{
			name:     "adjacent opaque values",
			args:     []any{"a", a, b, "b"},
			expected: []any{openError, "a", reset, a, b, openError, "b", reset},
		},
		{
			name:     "trailing run of opaque values",
			args:     []any{a, b},
			expected: []any{openError, reset, a, b, openError, reset},
		},
		{
			name:     "absent after opaque does not reopen",
			args:     []any{a, nil},
			expected: []any{openError, reset, a, "<nil>", reset},
		},
		{
			name:     "absent before opaque is closed",
			args:     []any{nil, a},
			expected: []any{openError, "<nil>", reset, a, openError, reset},
		},
		{
			name:     "bool after opaque reopens",
			args:     []any{a, false},
			expected: []any{openError, reset, a, openError, false, reset},
		},
		{
			name:     "errors are opaque",
			args:     []any{"failed:", errVal},
			expected: []any{openError, "failed:", reset, errVal, openError, reset},
		},
		{
			name:     "tokens in content",
			args:     []any{"[ul]u", 3},
			expected: []any{openError, "\x1b[4mu", "3", reset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, rec := newRecorded(t)
			require.NoError(t, w.Error(tt.args...))

			call := rec.Last()
			assert.Equal(t, "error", call.Method)
			assert.Equal(t, tt.expected, call.Args)
		})
	}
}

func TestStyledInterleave_DoesNotMutateCallerArgs(t *testing.T) {
	w, _ := newRecorded(t)
	args := []any{"[bo]a", &point{}, "b"}
	snapshot := append([]any(nil), args...)

	require.NoError(t, w.Error(args...))
	assert.Equal(t, snapshot, args)
}

func TestEmit(t *testing.T) {
	w, rec := newRecorded(t)

	for _, level := range Levels {
		require.NoError(t, w.Emit(level, "x"))
	}
	assert.Equal(t, []string{"log", "error", "warn", "info", "log"}, rec.Methods())
}
