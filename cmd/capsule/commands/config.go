package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"timecapsule/internal/app"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and persist configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := wire.Config
				if cfg.Passphrase != "" {
					cfg.Passphrase = "********"
				}
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(cfg)
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Write the effective configuration (without passphrase) to config.yaml",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Save(wire.Config)
			},
		},
	)
	return cmd
}
