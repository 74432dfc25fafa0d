package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func statusCmd() *cobra.Command {
	return statusCmdWithApp(boltzctl.New())
}

// Takes a caller-supplied app struct; useful for testing.
func statusCmdWithApp(a *boltzctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "status <job-id> [job-id] ...",
		Short:        "Show the scheduler state of submitted jobs",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := statusOptionsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			return a.Status(ctx, args, *opts)
		},
	}
	cmd.Flags().Bool("watch", false, "Keep polling until every job has left the queue.")
	cmd.Flags().Duration("poll-interval", 0, "Time between polls when watching. Defaults to the configured interval.")
	return cmd
}
