package writer

import (
	"io"
	"slices"

	"github.com/simonhull/cfx/style"
)

// Log substitutes tokens in every text argument and sends them to the
// sink's Log without any wrapping style.
func (w *StyleWriter) Log(items ...any) error {
	return w.Emit(LevelLog, items...)
}

// Error writes in the error style to the sink's Error, or Log.
func (w *StyleWriter) Error(items ...any) error {
	return w.Emit(LevelError, items...)
}

// Warn writes in the warning style to the sink's Warn, or Log.
func (w *StyleWriter) Warn(items ...any) error {
	return w.Emit(LevelWarn, items...)
}

// Info writes in the info style to the sink's Info, or Log.
func (w *StyleWriter) Info(items ...any) error {
	return w.Emit(LevelInfo, items...)
}

// Success writes in the success style to the sink's Log.
func (w *StyleWriter) Success(items ...any) error {
	return w.Emit(LevelSuccess, items...)
}

// Emit sends items at level. Errors from the sink are returned as-is.
func (w *StyleWriter) Emit(level Level, items ...any) error {
	if err := w.writeTimestamp(); err != nil {
		return err
	}

	var open string
	if level != LevelLog {
		open = w.Styles[level]
	}

	args := style.Values(w.rewrite(style.Items(items), open, w.Reset))
	return method(w.sink, level)(args...)
}

// rewrite substitutes text items and, when open is set, wraps the list in
// open/closing and closes the style around every run of opaque values so no
// escape sequence ends up next to something the sink renders itself.
func (w *StyleWriter) rewrite(items []style.Item, open, closing string) []style.Item {
	ref := w.ref
	styled := open != ""

	if styled {
		items = slices.Insert(items, 0, style.Text(open))
		items = append(items, style.Text(closing))
	}

	for i := 0; i < len(items); i++ {
		if !items[i].IsOpaque() {
			items[i] = items[i].Substitute(ref)
			if styled && i+1 < len(items) && items[i+1].IsOpaque() {
				items = slices.Insert(items, i+1, style.Text(ref.Apply(closing)))
				i++
			}
			continue
		}

		if styled && i+1 < len(items) && !items[i+1].IsOpaque() && !items[i+1].IsAbsent() {
			items = slices.Insert(items, i+1, style.Text(ref.Apply(open)))
			i++
		}
	}

	return items
}

// writeTimestamp emits the timestamp prefix when PrependTime is set.
func (w *StyleWriter) writeTimestamp() error {
	if !w.PrependTime {
		return nil
	}

	prefix := w.ref.Apply(w.TimestampPrefix) +
		w.formatter(w.TimestampFormat) +
		w.ref.Apply(w.TimestampSuffix)

	if rs, ok := w.sink.(RawSink); ok {
		return rs.WriteRaw(prefix)
	}
	_, err := io.WriteString(w.raw, prefix)
	return err
}
