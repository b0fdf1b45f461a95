// Package sink provides destinations for styled output.
//
// A sink receives the argument list a StyleWriter has already styled and
// decides how to render it:
//
//   - Console prints like a terminal console: Log and Info go to stdout,
//     Error and Warn go to stderr.
//   - File appends to a size-rotated log file, optionally with escape
//     sequences stripped.
//   - Slog forwards each call to a *slog.Logger at the matching level.
//
// Sinks only implement the capabilities they care about. A StyleWriter
// falls back to Log for any level a sink does not handle itself.
package sink
