// Package timestamp renders times with moment-style patterns such as
// "YYYY-MM-DD HH:mm:ss".
//
// Supported fields:
//
//	YYYY  four-digit year
//	YY    two-digit year
//	MM    month, 01-12
//	DD    day of month, 01-31
//	HH    hour, 00-23
//	mm    minute, 00-59
//	ss    second, 00-59
//	ms    millisecond, 000-999
//
// Everything else in a pattern is copied through unchanged.
package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is the pattern used when none is configured.
const DefaultPattern = "YYYY-MM-DD HH:mm:ss"

// Formatter turns a pattern into timestamp text.
type Formatter func(pattern string) string

// Format renders t using pattern.
func Format(pattern string, t time.Time) string {
	if pattern == "" {
		return ""
	}

	r := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", t.Year()),
		"YY", fmt.Sprintf("%02d", t.Year()%100),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"DD", fmt.Sprintf("%02d", t.Day()),
		"HH", fmt.Sprintf("%02d", t.Hour()),
		"mm", fmt.Sprintf("%02d", t.Minute()),
		"ss", fmt.Sprintf("%02d", t.Second()),
		"ms", fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)),
	)
	return r.Replace(pattern)
}

// Now renders the current local time using pattern.
func Now(pattern string) string {
	return Format(pattern, time.Now())
}

// Fixed returns a Formatter that always renders t. Useful for tests and
// for replaying output with a known clock.
func Fixed(t time.Time) Formatter {
	return func(pattern string) string {
		return Format(pattern, t)
	}
}
