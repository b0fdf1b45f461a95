package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// StyleCmd prints its arguments with tokens substituted, without timestamps
// or level styles. Useful for building prompts and shell output.
func StyleCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "style [text...]",
		Short: "Substitute tokens and print the raw result",
		Example: `  PS1="$(cfx style -n '[fgreen]\u[re]') $ "
  echo "$(cfx style -n '[bo]')important$(cfx style -n '[re]')"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}

			text := w.Sprint(strings.Join(args, " "))
			if noNewline {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			} else {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not print a trailing newline")
	return cmd
}
