// Package sinktest provides sinks that record what they receive.
package sinktest

import (
	"strings"
	"sync"
)

// Raw is the method name recorded for raw writes.
const Raw = "raw"

// Call is one recorded invocation.
type Call struct {
	Method string
	Args   []any
}

// Recorder implements every sink capability and records calls in order.
// Err, when set, is returned from every call after it is recorded.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(method string, args []any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Method: method, Args: args})
	return r.Err
}

// Log records a log call.
func (r *Recorder) Log(args ...any) error { return r.record("log", args) }

// Error records an error call.
func (r *Recorder) Error(args ...any) error { return r.record("error", args) }

// Warn records a warn call.
func (r *Recorder) Warn(args ...any) error { return r.record("warn", args) }

// Info records an info call.
func (r *Recorder) Info(args ...any) error { return r.record("info", args) }

// WriteRaw records a raw write.
func (r *Recorder) WriteRaw(s string) error { return r.record(Raw, []any{s}) }

// Calls returns every recorded call, raw writes included.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call, or a zero Call.
func (r *Recorder) Last() Call {
	calls := r.Calls()
	if len(calls) == 0 {
		return Call{}
	}
	return calls[len(calls)-1]
}

// Methods returns the method names of every call in order.
func (r *Recorder) Methods() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Method
	}
	return out
}

// RawText concatenates every raw write.
func (r *Recorder) RawText() string {
	var b strings.Builder
	for _, c := range r.Calls() {
		if c.Method == Raw {
			b.WriteString(c.Args[0].(string))
		}
	}
	return b.String()
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// LogOnly exposes only the required Log capability of r, so every level
// falls back to Log and raw writes go elsewhere.
func (r *Recorder) LogOnly() LogOnly {
	return LogOnly{rec: r}
}

// LogOnly is a sink with nothing but Log.
type LogOnly struct {
	rec *Recorder
}

// Log records a log call on the parent recorder.
func (l LogOnly) Log(args ...any) error { return l.rec.record("log", args) }
