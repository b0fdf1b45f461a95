package commands

import (
	"fmt"

	"github.com/simonhull/cfx/config"
	"github.com/simonhull/cfx/internal/output"
	"github.com/simonhull/cfx/sink"
	"github.com/simonhull/cfx/writer"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and layers command-line flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.File != "" {
		output.Verbose(fmt.Sprintf("Loaded config from: %s", cfg.File))
	} else {
		output.Verbose("No config file found, using defaults")
	}

	if flags.Changed("time") {
		cfg.PrependTime, _ = flags.GetBool("time")
	}
	if flags.Changed("time-format") {
		cfg.Timestamp.Format, _ = flags.GetString("time-format")
	}
	if flags.Changed("reference") {
		cfg.ReferencePath, _ = flags.GetString("reference")
	}
	if cfg.ReferencePath != "" {
		output.Verbose(fmt.Sprintf("Using token table: %s", cfg.ReferencePath))
	}

	return cfg, nil
}

// newWriter builds a writer that prints to the command's streams.
func newWriter(cmd *cobra.Command) (*writer.StyleWriter, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	console := sink.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	w, err := cfg.NewWriter(console)
	if err != nil {
		return nil, fmt.Errorf("configuring writer: %w", err)
	}
	return w, nil
}

// toItems converts command arguments into writer arguments.
func toItems(args []string) []any {
	items := make([]any, len(args))
	for i, arg := range args {
		items[i] = arg
	}
	return items
}
