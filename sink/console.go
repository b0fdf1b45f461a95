package sink

import (
	"fmt"
	"io"
	"os"
)

// Console writes each call as one space-separated line.
// A zero Console writes to os.Stdout and os.Stderr.
type Console struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewConsole creates a console sink on the given streams.
// Nil streams fall back to the process streams.
func NewConsole(stdout, stderr io.Writer) *Console {
	return &Console{Stdout: stdout, Stderr: stderr}
}

// Log prints to stdout.
func (c *Console) Log(args ...any) error {
	return writeLine(c.stdout(), args)
}

// Info prints to stdout.
func (c *Console) Info(args ...any) error {
	return writeLine(c.stdout(), args)
}

// Warn prints to stderr.
func (c *Console) Warn(args ...any) error {
	return writeLine(c.stderr(), args)
}

// Error prints to stderr.
func (c *Console) Error(args ...any) error {
	return writeLine(c.stderr(), args)
}

// WriteRaw writes s to stdout without a newline.
func (c *Console) WriteRaw(s string) error {
	_, err := io.WriteString(c.stdout(), s)
	return err
}

func (c *Console) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Console) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

func writeLine(w io.Writer, args []any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
