package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigCmd prints the effective configuration as YAML, after the config
// file, CFX_* variables and flags have been applied. The output is a valid
// cfx.yml.
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			if cfg.File != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.File)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
