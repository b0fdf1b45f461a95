package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelLog, "log"},
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, level := range Levels {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}

	got, err := ParseLevel(" WARNING ")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, got)

	_, err = ParseLevel("debug")
	assert.Error(t, err)
}

func TestDefaultStyles_FreshCopy(t *testing.T) {
	a := DefaultStyles()
	a[LevelError] = "changed"
	assert.Equal(t, DefaultError, DefaultStyles()[LevelError])
	_, ok := DefaultStyles()[LevelLog]
	assert.False(t, ok)
}
