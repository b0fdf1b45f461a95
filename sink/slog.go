package sink

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Slog forwards calls to a structured logger. Text arguments are stripped
// of escape sequences and joined into the message; opaque arguments are
// attached as arg<N> attributes.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a sink on logger, or on slog.Default() when nil.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

// Log records at info level.
func (s *Slog) Log(args ...any) error {
	s.record(slog.LevelInfo, args)
	return nil
}

// Info records at info level.
func (s *Slog) Info(args ...any) error {
	s.record(slog.LevelInfo, args)
	return nil
}

// Warn records at warn level.
func (s *Slog) Warn(args ...any) error {
	s.record(slog.LevelWarn, args)
	return nil
}

// Error records at error level.
func (s *Slog) Error(args ...any) error {
	s.record(slog.LevelError, args)
	return nil
}

// WriteRaw drops raw output. Records carry their own time.
func (s *Slog) WriteRaw(string) error {
	return nil
}

func (s *Slog) record(level slog.Level, args []any) {
	parts := make([]string, 0, len(args))
	var attrs []any

	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			if text := strings.TrimSpace(ansi.Strip(v)); text != "" {
				parts = append(parts, text)
			}
		case bool:
			parts = append(parts, strconv.FormatBool(v))
		case nil:
			parts = append(parts, "<nil>")
		default:
			attrs = append(attrs, slog.Any(fmt.Sprintf("arg%d", i), v))
		}
	}

	s.logger.Log(context.Background(), level, strings.Join(parts, " "), attrs...)
}
