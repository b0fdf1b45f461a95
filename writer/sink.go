package writer

import "reflect"

// Sink is the required capability of an output target.
type Sink interface {
	Log(args ...any) error
}

// ErrorSink handles Error calls. Sinks without it receive them via Log.
type ErrorSink interface {
	Error(args ...any) error
}

// WarnSink handles Warn calls. Sinks without it receive them via Log.
type WarnSink interface {
	Warn(args ...any) error
}

// InfoSink handles Info calls. Sinks without it receive them via Log.
type InfoSink interface {
	Info(args ...any) error
}

// RawSink receives timestamp prefixes. Sinks without it have them
// written to the writer's raw stream instead.
type RawSink interface {
	WriteRaw(s string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(args ...any) error

// Log calls f.
func (f SinkFunc) Log(args ...any) error {
	return f(args...)
}

// method resolves the sink function for level, falling back to Log.
func method(s Sink, level Level) func(args ...any) error {
	switch level {
	case LevelError:
		if es, ok := s.(ErrorSink); ok {
			return es.Error
		}
	case LevelWarn:
		if ws, ok := s.(WarnSink); ok {
			return ws.Warn
		}
	case LevelInfo:
		if is, ok := s.(InfoSink); ok {
			return is.Info
		}
	}
	return s.Log
}

// isNilSink reports whether s holds a nil pointer, func or map, which would
// panic on the first call.
func isNilSink(s Sink) bool {
	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
