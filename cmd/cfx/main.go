package main

import (
	"os"

	"github.com/simonhull/cfx/internal/commands"
	"github.com/simonhull/cfx/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()

	// One command per output level
	for _, cmd := range commands.LevelCmds() {
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(commands.StyleCmd())
	rootCmd.AddCommand(commands.TableCmd())
	rootCmd.AddCommand(commands.TokensCmd())
	rootCmd.AddCommand(commands.ConfigCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
