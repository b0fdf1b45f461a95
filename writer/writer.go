package writer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/simonhull/cfx/sink"
	"github.com/simonhull/cfx/style"
	"github.com/simonhull/cfx/timestamp"
)

var (
	// ErrInvalidSink is returned when a supplied sink cannot be called.
	ErrInvalidSink = errors.New("invalid sink")

	// ErrInvalidReference is returned when a supplied token table is empty
	// or has no reset token.
	ErrInvalidReference = errors.New("invalid style reference")
)

// Default timestamp templates.
const (
	DefaultTimestampPrefix = "[fwhite][[re][th]"
	DefaultTimestampSuffix = "[re][fwhite]][re] "
)

// Options configures a StyleWriter. Every field is optional.
type Options struct {
	// Reference is the token table. Defaults to style.ASCII().
	Reference *style.Reference

	// Codes builds the token table from a map instead. It must not be
	// combined with Reference.
	Codes map[string]string

	// Sink receives the styled arguments. Defaults to a console on the
	// process streams.
	Sink Sink

	// Raw receives timestamp prefixes when Sink does not implement
	// RawSink. Defaults to os.Stdout.
	Raw io.Writer

	// Formatter renders TimestampFormat. Defaults to timestamp.Now.
	Formatter timestamp.Formatter
}

// StyleWriter substitutes style tokens and forwards output to a sink.
//
// The exported fields may be changed between calls; changes apply to the
// next call only. A StyleWriter is not safe for concurrent use.
type StyleWriter struct {
	// PrependTime writes a timestamp prefix before every call.
	PrependTime bool

	// TimestampFormat is the pattern handed to the formatter.
	TimestampFormat string

	// TimestampPrefix and TimestampSuffix surround the timestamp and may
	// contain tokens.
	TimestampPrefix string
	TimestampSuffix string

	// Reset closes a styled call.
	Reset string

	// Styles holds the opening template per level. LevelLog is never
	// styled. An empty template disables wrapping for that level.
	Styles map[Level]string

	ref       *style.Reference
	sink      Sink
	raw       io.Writer
	formatter timestamp.Formatter
}

// New creates a StyleWriter. A nil opts yields the defaults.
func New(opts *Options) (*StyleWriter, error) {
	if opts == nil {
		opts = &Options{}
	}

	ref, err := resolveReference(opts)
	if err != nil {
		return nil, err
	}

	s := opts.Sink
	if s == nil {
		s = sink.NewConsole(nil, nil)
	} else if isNilSink(s) {
		return nil, fmt.Errorf("%w: %T is nil", ErrInvalidSink, s)
	}

	raw := opts.Raw
	if raw == nil {
		raw = os.Stdout
	}

	formatter := opts.Formatter
	if formatter == nil {
		formatter = timestamp.Now
	}

	return &StyleWriter{
		TimestampFormat: timestamp.DefaultPattern,
		TimestampPrefix: DefaultTimestampPrefix,
		TimestampSuffix: DefaultTimestampSuffix,
		Reset:           DefaultReset,
		Styles:          DefaultStyles(),
		ref:             ref,
		sink:            s,
		raw:             raw,
		formatter:       formatter,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts *Options) *StyleWriter {
	w, err := New(opts)
	if err != nil {
		panic(err)
	}
	return w
}

func resolveReference(opts *Options) (*style.Reference, error) {
	switch {
	case opts.Reference != nil && opts.Codes != nil:
		return nil, fmt.Errorf("%w: set Reference or Codes, not both", ErrInvalidReference)
	case opts.Reference != nil:
		if err := validateReference(opts.Reference); err != nil {
			return nil, err
		}
		return opts.Reference, nil
	case opts.Codes != nil:
		ref, err := style.NewReference(opts.Codes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
		if err := validateReference(ref); err != nil {
			return nil, err
		}
		return ref, nil
	default:
		return style.ASCII(), nil
	}
}

// validateReference checks that ref can close every style the writer opens.
func validateReference(ref *style.Reference) error {
	if ref.Len() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidReference, style.ErrEmptyReference)
	}
	if _, ok := ref.Code(style.Reset); !ok {
		return fmt.Errorf("%w: missing reset token %q", ErrInvalidReference, style.Token(style.Reset))
	}
	return nil
}

// Reference returns the active token table.
func (w *StyleWriter) Reference() *style.Reference {
	return w.ref
}

// SetReference swaps the token table for subsequent calls. The table must
// define the reset token.
func (w *StyleWriter) SetReference(ref *style.Reference) error {
	if err := validateReference(ref); err != nil {
		return err
	}
	w.ref = ref
	return nil
}

// Sink returns the output target.
func (w *StyleWriter) Sink() Sink {
	return w.sink
}

// SetStyle substitutes tokens in v using the active table. Values other
// than strings, numbers and nil are returned unchanged.
func (w *StyleWriter) SetStyle(v any) any {
	return style.Substitute(w.ref, v)
}

// Sprint substitutes tokens in s.
func (w *StyleWriter) Sprint(s string) string {
	return w.ref.Apply(s)
}
