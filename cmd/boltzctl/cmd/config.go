package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func configCmd() *cobra.Command {
	return configCmdWithApp(boltzctl.New())
}

// Takes a caller-supplied app struct; useful for testing.
func configCmdWithApp(a *boltzctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Print the effective configuration",
		Long:         "Print the configuration a submission run would use, after merging defaults, config files, and environment variables.",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ShowConfig()
		},
	}
	return cmd
}
