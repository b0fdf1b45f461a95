package commands

import (
	"fmt"

	"github.com/simonhull/cfx"
	"github.com/simonhull/cfx/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the cfx CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "cfx",
		Short: "Style terminal output with bracketed tokens",
		Long: `cfx replaces tokens such as [bo], [fred] or [bgreen] with terminal
escape sequences and prints the result.

• Print text at a semantic level: log, error, warn, info, success
• Preview the active token table and the 16-color palette
• Configure timestamps, styles and custom tokens through cfx.yml or CFX_* variables`,
		Version:       cfx.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	pf.StringP("config", "c", "", "Config file (default: ./cfx.yml or ~/.config/cfx/cfx.yml)")
	pf.BoolP("time", "t", false, "Prefix every line with a timestamp")
	pf.String("time-format", "", "Timestamp pattern, e.g. \"HH:mm:ss\"")
	pf.StringP("reference", "r", "", "YAML token table to use instead of the built-in one")

	return cmd
}

// VersionCmd prints version information.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cfx v%s\n", cfx.Version)
		},
	}
}
