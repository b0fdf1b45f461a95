package writer

import (
	"fmt"
	"strings"
)

// Level is a semantic output level.
type Level int

const (
	LevelLog Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelSuccess
)

// Levels lists every level in declaration order.
var Levels = []Level{LevelLog, LevelError, LevelWarn, LevelInfo, LevelSuccess}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelLog:
		return "log"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name such as "warn" into a Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels {
		if l.String() == name {
			return l, nil
		}
	}
	if name == "warning" {
		return LevelWarn, nil
	}
	return LevelLog, fmt.Errorf("unknown level %q", s)
}

// Default style templates.
const (
	DefaultReset   = " [re]"
	DefaultError   = "[bred][fwhite] "
	DefaultWarn    = "[byellow][fblack] "
	DefaultInfo    = "[bblack][fcyan] "
	DefaultSuccess = "[bgreen][fblack] "
)

// DefaultStyles returns a fresh copy of the default opening templates.
func DefaultStyles() map[Level]string {
	return map[Level]string{
		LevelError:   DefaultError,
		LevelWarn:    DefaultWarn,
		LevelInfo:    DefaultInfo,
		LevelSuccess: DefaultSuccess,
	}
}
