package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/simonhull/cfx/internal/output"
	"github.com/simonhull/cfx/style"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TokensCmd lists the active token table with a sample of each token.
func TokensCmd() *cobra.Command {
	var (
		namesOnly  bool
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the active token table",
		Long: `List every token in the active table, the escape sequence it expands to,
and a rendered sample. Custom tables come from --reference or the
reference/codes config keys.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ref, err := cfg.Reference()
			if err != nil {
				return err
			}

			if exportPath != "" {
				return exportTokens(ref, exportPath)
			}

			out := cmd.OutOrStdout()
			if namesOnly {
				for _, name := range ref.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			output.Verbose(fmt.Sprintf("Listing %d tokens", ref.Len()))
			fmt.Fprintln(out, renderTokens(ref, output.TerminalWidth()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print token names only, one per line")
	cmd.Flags().StringVarP(&exportPath, "export", "o", "", "Write the active table to a YAML file usable with --reference")
	return cmd
}

// exportTokens writes ref as a YAML token table.
func exportTokens(ref *style.Reference, path string) error {
	data, err := yaml.Marshal(ref)
	if err != nil {
		return fmt.Errorf("encoding tokens: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing tokens: %w", err)
	}

	output.Success(fmt.Sprintf("Wrote %s", path))
	output.Step(fmt.Sprintf("%d tokens", ref.Len()))
	return nil
}

// renderTokens lays the table out as TOKEN | SEQUENCE | SAMPLE rows,
// shrinking to maxWidth when the natural layout is wider.
func renderTokens(ref *style.Reference, maxWidth int) string {
	reset, ok := ref.Code(style.Reset)
	if !ok {
		reset = ansi.ResetStyle
	}

	rows := make([][]string, 0, ref.Len())
	for _, name := range ref.Names() {
		code, _ := ref.Code(name)
		rows = append(rows, []string{
			style.Token(name),
			strings.Trim(fmt.Sprintf("%q", code), `"`),
			code + "sample" + reset,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("TOKEN", "SEQUENCE", "SAMPLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if lipgloss.Width(t.String()) > maxWidth {
		t = t.Width(maxWidth)
	}
	return t.String()
}
