// Package writer turns bracketed style tokens into escape sequences and
// hands the result to a sink.
//
// # Usage
//
//	w, err := writer.New(nil) // ASCII table, console sink
//	if err != nil {
//	    return err
//	}
//	w.Log("[bo]bold[re] and plain")
//	w.Error("disk full")
//	w.Success("Build OK")
//
// # Levels
//
// Error, Warn, Info and Success wrap their arguments in an opening style
// and a closing reset:
//
//   - Error: white on red, sent to the sink's Error
//   - Warn: black on yellow, sent to the sink's Warn
//   - Info: cyan on black, sent to the sink's Info
//   - Success: black on green, sent to the sink's Log
//
// Log applies no wrapping. A sink that lacks a level method receives that
// level through Log.
//
// # Opaque values
//
// Strings and numbers are substituted. Other values (maps, structs,
// errors, pointers) are passed to the sink unchanged. When a level style is
// active the writer closes the style before a run of such values and
// reopens it afterwards:
//
//	w.Error("a", obj, "b")
//	// sink.Error(open, "a", reset, obj, open, "b", reset)
//
// # Timestamps
//
// Setting PrependTime writes a styled timestamp to the raw stream before
// every call. The pattern in TimestampFormat uses YYYY, MM, DD, HH, mm, ss
// and ms fields.
package writer
