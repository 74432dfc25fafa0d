package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func cancelCmd() *cobra.Command {
	return cancelCmdWithApp(boltzctl.New())
}

// Takes a caller-supplied app struct; useful for testing.
func cancelCmdWithApp(a *boltzctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cancel <job-id> [job-id] ...",
		Short:        "Cancel submitted jobs",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			return a.Cancel(ctx, args)
		},
	}
	return cmd
}
