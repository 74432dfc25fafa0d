package boltzctl

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/foldlab/boltzctl/internal/boltzctl/configuration"
)

// ShowConfig prints the effective configuration to the app output.
func (a *App) ShowConfig() error {
	if err := a.validateParams(); err != nil {
		return err
	}
	writeConfig(a.Out, a.Params.Config)
	return nil
}

func writeConfig(out io.Writer, cfg *configuration.BoltzctlConfig) {
	w := tabwriter.NewWriter(out, 1, 1, 1, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "Input directory:\t%s\n", cfg.Inputs.Dir)
	fmt.Fprintf(w, "Input suffix:\t%s\n", cfg.Inputs.Suffix)
	fmt.Fprintf(w, "Log directory:\t%s\n", cfg.Inputs.LogDir)
	fmt.Fprintf(w, "Job name prefix:\t%s\n", cfg.Inputs.JobNamePrefix)
	fmt.Fprintf(w, "Account:\t%s\n", cfg.Slurm.Account)
	fmt.Fprintf(w, "QOS:\t%s\n", cfg.Slurm.QOS)
	fmt.Fprintf(w, "Reservation:\t%s\n", cfg.Slurm.Reservation)
	fmt.Fprintf(w, "Node list:\t%s\n", cfg.Slurm.NodeList)
	fmt.Fprintf(w, "Tasks:\t%d\n", cfg.Slurm.Ntasks)
	fmt.Fprintf(w, "CPUs per task:\t%d\n", cfg.Slurm.CpusPerTask)
	fmt.Fprintf(w, "Tasks per node:\t%d\n", cfg.Slurm.NtasksPerNode)
	fmt.Fprintf(w, "Memory:\t%s\n", cfg.Slurm.Memory)
	fmt.Fprintf(w, "Time limit:\t%s\n", cfg.Slurm.TimeLimit)
	fmt.Fprintf(w, "Partition:\t%s\n", cfg.Slurm.Partition)
	fmt.Fprintf(w, "Gres:\t%s\n", cfg.Slurm.Gres)
	fmt.Fprintf(w, "Cache directory:\t%s\n", cfg.Boltz.CacheDir)
	fmt.Fprintf(w, "Use MSA server:\t%t\n", cfg.Boltz.UseMSAServer)
	fmt.Fprintf(w, "Limit preprocessing threads:\t%t\n", cfg.Boltz.LimitPreprocessingThreads)
	fmt.Fprintf(w, "Override existing results:\t%t\n", cfg.Boltz.Override)
	fmt.Fprintf(w, "Output format:\t%s\n", cfg.Boltz.OutputFormat)
	fmt.Fprintf(w, "Modules:\t%s\n", strings.Join(cfg.Runtime.Modules, ", "))
	fmt.Fprintf(w, "Conda environment:\t%s\n", cfg.Runtime.CondaEnv)
	fmt.Fprintf(w, "Sbatch command:\t%s\n", cfg.Scheduler.Connection.SbatchCommand)
}
