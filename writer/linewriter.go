package writer

import (
	"bytes"
	"io"
)

// LineWriter is an io.Writer that sends each complete line through a
// StyleWriter at a fixed level. Partial lines are held until the next
// newline or Flush.
type LineWriter struct {
	w      *StyleWriter
	level  Level
	buffer []byte
}

var _ io.Writer = (*LineWriter)(nil)

// LineWriter returns an io.Writer that emits every line at level. Pipe a
// subprocess's output into it to style each line as it arrives.
func (w *StyleWriter) LineWriter(level Level) *LineWriter {
	return &LineWriter{w: w, level: level}
}

// Write emits every complete line in p. The trailing newline is not part
// of the emitted text; a "\r\n" ending is trimmed as well.
//
// A line is consumed before it is emitted, so a sink error drops that line
// instead of sending it again on the next Write. The returned count then
// covers p up to the end of the failed line, and the rest of p is left to
// the caller.
func (lw *LineWriter) Write(p []byte) (int, error) {
	held := len(lw.buffer)
	lw.buffer = append(lw.buffer, p...)

	start := 0
	for {
		i := bytes.IndexByte(lw.buffer[start:], '\n')
		if i < 0 {
			break
		}
		end := start + i + 1
		line := string(bytes.TrimSuffix(lw.buffer[start:end-1], []byte("\r")))
		start = end

		if err := lw.w.Emit(lw.level, line); err != nil {
			lw.buffer = lw.buffer[:0]
			return end - held, err
		}
	}

	lw.buffer = append(lw.buffer[:0], lw.buffer[start:]...)
	return len(p), nil
}

// Flush emits any buffered partial line.
func (lw *LineWriter) Flush() error {
	if len(lw.buffer) == 0 {
		return nil
	}
	line := string(lw.buffer)
	lw.buffer = lw.buffer[:0]
	return lw.w.Emit(lw.level, line)
}
