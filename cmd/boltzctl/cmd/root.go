package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boltzctl",
		Short: "boltzctl submits boltz structure prediction jobs to a SLURM cluster.",
		Long: `boltzctl wraps every input file in a directory in a batch job script and
pipes each script to sbatch.

Persistent config can be saved in a config file so it doesn't have to be specified every command.

Example config:
slurm:
  account: structbio
  partition: gpu
boltz:
  cachedir: /scratch/boltz_cache

The location of this file can be passed in using the --config argument.
If not provided, $HOME/.boltzctl.yaml is used.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.boltzctl.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		submitCmd(),
		scriptCmd(),
		statusCmd(),
		cancelCmd(),
		configCmd(),
		versionCmd(),
	)

	return cmd
}
