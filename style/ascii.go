package style

// Token names of the built-in table.
const (
	Reset     = "re"
	Bold      = "bo"
	Thin      = "th"
	Underline = "ul"
	Blink     = "bl"
	Reverse   = "rv"
	Hidden    = "hd"
)

// Colors lists the eight base colors in SGR order. Foreground tokens are
// "f"+color and background tokens are "b"+color.
var Colors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Attributes lists the attribute tokens shown by the color table demo.
var Attributes = []string{Thin, Bold, Underline}

var asciiCodes = map[string]string{
	// Style and control
	Reset:     "\x1b[0m",
	Bold:      "\x1b[1m",
	Thin:      "\x1b[2m",
	Underline: "\x1b[4m",
	Blink:     "\x1b[5m",
	Reverse:   "\x1b[7m",
	Hidden:    "\x1b[8m",

	// Foreground
	"fblack":   "\x1b[30m",
	"fred":     "\x1b[31m",
	"fgreen":   "\x1b[32m",
	"fyellow":  "\x1b[33m",
	"fblue":    "\x1b[34m",
	"fmagenta": "\x1b[35m",
	"fcyan":    "\x1b[36m",
	"fwhite":   "\x1b[37m",

	// Background
	"bblack":   "\x1b[40m",
	"bred":     "\x1b[41m",
	"bgreen":   "\x1b[42m",
	"byellow":  "\x1b[43m",
	"bblue":    "\x1b[44m",
	"bmagenta": "\x1b[45m",
	"bcyan":    "\x1b[46m",
	"bwhite":   "\x1b[47m",
}

var ascii = MustReference(asciiCodes)

// ASCII returns the built-in table. The table is immutable and shared.
func ASCII() *Reference {
	return ascii
}

// Foreground returns the foreground token name for color.
func Foreground(color string) string { return "f" + color }

// Background returns the background token name for color.
func Background(color string) string { return "b" + color }

// Token wraps name in brackets, ready to embed in a string.
func Token(name string) string { return "[" + name + "]" }
