package commands

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/simonhull/cfx"
	"github.com/simonhull/cfx/style"
	"github.com/simonhull/cfx/writer"
	"github.com/spf13/cobra"
)

// IssuesURL is where rendering problems should be reported.
const IssuesURL = "https://github.com/simonhull/cfx/issues"

// swatchWidth is the width of one table cell, wide enough for "magenta".
const swatchWidth = 7

// TableCmd prints the 16-color palette with each attribute applied, so the
// output can be checked against the terminal's rendering.
func TableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the color table for visual checking",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			return printColorTable(w)
		},
	}
}

func printColorTable(w *writer.StyleWriter) error {
	if err := w.Success("cfx@" + cfx.Version + " color table"); err != nil {
		return err
	}

	// The underline runs across the whole header row.
	header := []string{style.Token(style.Underline) + pad("     name", 5+swatchWidth), pad("txt", swatchWidth), pad("bg", swatchWidth)}
	for _, attr := range attributeLabels() {
		header = append(header, pad(attr, swatchWidth), pad("", swatchWidth))
	}
	header = append(header, pad("space", swatchWidth)+style.Token(style.Reset))
	if err := w.Log(strings.Join(header, " | ")); err != nil {
		return err
	}

	for _, color := range style.Colors {
		fg := style.Token(style.Foreground(color))
		bg := style.Token(style.Background(color))

		line := []string{
			"  -- " + pad(color, swatchWidth),
			swatch(fg, color),
			swatch(bg, color),
		}
		for _, attr := range style.Attributes {
			line = append(line,
				swatch(fg+style.Token(attr), color),
				swatch(bg+style.Token(attr), color),
			)
		}
		line = append(line, swatch(bg, ""))

		if err := w.Log(strings.Join(line, " | ")); err != nil {
			return err
		}
	}

	if err := w.Warn("If the color table above does not match its descriptions please report an issue here:"); err != nil {
		return err
	}
	return w.Info(IssuesURL)
}

// swatch renders text padded to a cell with open applied and reset after.
func swatch(open, text string) string {
	return open + pad(text, swatchWidth) + style.Token(style.Reset)
}

// pad right-fills s with spaces to width visible columns.
func pad(s string, width int) string {
	n := ansi.StringWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func attributeLabels() []string {
	labels := map[string]string{
		style.Thin:      "thin",
		style.Bold:      "bold",
		style.Underline: "ul",
	}
	out := make([]string, 0, len(style.Attributes))
	for _, attr := range style.Attributes {
		out = append(out, labels[attr])
	}
	return out
}
