package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 3, 42*int(time.Millisecond), time.UTC)

	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{name: "default", pattern: DefaultPattern, expected: "2024-03-07 09:05:03"},
		{name: "short year", pattern: "DD/MM/YY", expected: "07/03/24"},
		{name: "milliseconds", pattern: "HH:mm:ss.ms", expected: "09:05:03.042"},
		{name: "literal text kept", pattern: "at HH h", expected: "at 09 h"},
		{name: "no fields", pattern: "plain", expected: "plain"},
		{name: "empty", pattern: "", expected: ""},
		{name: "case sensitive", pattern: "MM mm", expected: "03 05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.pattern, at))
		})
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC)
	f := Fixed(at)
	assert.Equal(t, "1999-12-31 23:59:59", f(DefaultPattern))
	assert.Equal(t, f(DefaultPattern), f(DefaultPattern))
}

func TestNow(t *testing.T) {
	got := Now("YYYY")
	assert.Len(t, got, 4)
}
