// Package cfx styles terminal output with bracketed tokens.
//
// The package-level functions use a process-wide writer built on first use
// with the ASCII table and a console sink:
//
//	cfx.Success("Build OK")
//	cfx.Log("[bo]bold[re] text")
//
// Programs that need their own table or sink build a writer with
// writer.New and either pass it around or install it with SetDefault.
package cfx

import (
	"sync"

	"github.com/simonhull/cfx/writer"
)

// Version is the cfx release.
const Version = "0.3.0"

var (
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultWriter *writer.StyleWriter
)

// Default returns the process-wide writer, creating it on first use.
func Default() *writer.StyleWriter {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultWriter == nil {
			defaultWriter = writer.MustNew(nil)
		}
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultWriter
}

// SetDefault replaces the process-wide writer. A nil w restores a fresh
// default writer.
func SetDefault(w *writer.StyleWriter) {
	if w == nil {
		w = writer.MustNew(nil)
	}
	defaultOnce.Do(func() {})

	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultWriter = w
}

// Convenience functions using the default writer
func Log(items ...any) error {
	return Default().Log(items...)
}

func Error(items ...any) error {
	return Default().Error(items...)
}

func Warn(items ...any) error {
	return Default().Warn(items...)
}

func Info(items ...any) error {
	return Default().Info(items...)
}

func Success(items ...any) error {
	return Default().Success(items...)
}

// SetStyle substitutes tokens in v with the default writer's table.
func SetStyle(v any) any {
	return Default().SetStyle(v)
}
