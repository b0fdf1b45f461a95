// Package output prints the cfx CLI's own status messages.
//
// It is separate from the styled output the CLI produces on behalf of the
// user: messages here describe what the tool is doing (which config was
// loaded, what went wrong) and go to stderr so they never mix with piped
// output. Styling uses lipgloss.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	out         io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetOutput redirects status messages. A nil w restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// Success prints a completed-operation message.
//
// Example:
//
//	output.Success("Wrote tokens.yml")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✔ "+msg))
}

// Error prints a failure that needs user attention.
//
// Example:
//
//	output.Error("reading config: permission denied")
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✖ "+msg))
}

// Step prints an indented sub-item.
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Loaded config from: ./cfx.yml")
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, stepStyle.Render("… "+msg))
	}
}

// TerminalWidth returns the terminal width, defaulting to 80 if unable to detect
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
