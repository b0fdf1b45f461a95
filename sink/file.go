package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig holds the configuration for a rotating file sink.
type FileConfig struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool

	// Plain strips escape sequences so the file stays readable in editors.
	Plain bool
}

// File appends every call to a single log file regardless of level.
type File struct {
	w     io.Writer
	c     io.Closer
	plain bool
}

// NewFile opens a size-rotated log file.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, errors.New("file sink requires a path")
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	// Set defaults if zero
	if lj.MaxSize == 0 {
		lj.MaxSize = 100
	}
	if lj.MaxBackups == 0 {
		lj.MaxBackups = 3
	}
	if lj.MaxAge == 0 {
		lj.MaxAge = 28
	}

	return &File{w: lj, c: lj, plain: cfg.Plain}, nil
}

// NewFileWriter wraps an existing writer. Close is a no-op unless w is
// also an io.Closer.
func NewFileWriter(w io.Writer, plain bool) *File {
	f := &File{w: w, plain: plain}
	if c, ok := w.(io.Closer); ok {
		f.c = c
	}
	return f
}

// Log appends one line.
func (f *File) Log(args ...any) error {
	line := fmt.Sprintln(args...)
	if f.plain {
		line = ansi.Strip(line)
	}
	if _, err := io.WriteString(f.w, line); err != nil {
		return fmt.Errorf("writing log line: %w", err)
	}
	return nil
}

// WriteRaw appends s without a newline.
func (f *File) WriteRaw(s string) error {
	if f.plain {
		s = ansi.Strip(s)
	}
	_, err := io.WriteString(f.w, s)
	return err
}

// Close releases the underlying file.
func (f *File) Close() error {
	if f.c == nil {
		return nil
	}
	return f.c.Close()
}
