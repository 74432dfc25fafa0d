package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func submitCmd() *cobra.Command {
	return submitCmdWithApp(boltzctl.New())
}

// Takes a caller-supplied app struct; useful for testing.
func submitCmdWithApp(a *boltzctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one batch job per input file",
		Long: `Submit renders a job script for every input file in the input directory and
pipes each script to sbatch. A failed submission does not stop the run; the
remaining inputs are still submitted and the failure is counted in the summary.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := submitOptionsFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			_, err = a.Submit(ctx, *opts)
			return err
		},
	}
	cmd.Flags().String("input-dir", "", "Directory holding input files. Overrides the configured directory.")
	cmd.Flags().Bool("dry-run", false, "Render job scripts without submitting them.")
	cmd.Flags().Bool("strict", false, "Exit with an error if any input fails to submit.")
	return cmd
}
