package cmd

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func scriptCmd() *cobra.Command {
	return scriptCmdWithApp(boltzctl.New())
}

// Takes a caller-supplied app struct; useful for testing.
func scriptCmdWithApp(a *boltzctl.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "script <input-file>",
		Short:        "Print the job script submit would generate for one input file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Script(args[0])
		},
	}
	return cmd
}
