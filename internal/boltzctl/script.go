package boltzctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/foldlab/boltzctl/internal/boltzctl/configuration"
	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
	"github.com/foldlab/boltzctl/pkg/slurm"
)

// JobScript renders the sbatch script spec for a single work item.
// All resource directives come from the run configuration; only the
// job name, log paths, and input path vary between items.
func JobScript(cfg *configuration.BoltzctlConfig, item *WorkItem) *slurm.ScriptSpec {
	return &slurm.ScriptSpec{
		JobName:       cfg.Inputs.JobNamePrefix + item.Name,
		Account:       cfg.Slurm.Account,
		QOS:           cfg.Slurm.QOS,
		Reservation:   cfg.Slurm.Reservation,
		NodeList:      cfg.Slurm.NodeList,
		Ntasks:        cfg.Slurm.Ntasks,
		CpusPerTask:   cfg.Slurm.CpusPerTask,
		NtasksPerNode: cfg.Slurm.NtasksPerNode,
		Memory:        cfg.Slurm.Memory,
		TimeLimit:     cfg.Slurm.TimeLimit,
		Partition:     cfg.Slurm.Partition,
		Gres:          cfg.Slurm.Gres,
		OutputPath:    filepath.Join(cfg.Inputs.LogDir, item.Name+".out"),
		ErrorPath:     filepath.Join(cfg.Inputs.LogDir, item.Name+".err"),
		Body:          jobBody(cfg, item),
	}
}

func jobBody(cfg *configuration.BoltzctlConfig, item *WorkItem) []string {
	lines := []string{
		`echo "job ${SLURM_JOB_ID} submitted by $(whoami) on $(hostname) started $(date)"`,
	}
	for _, module := range cfg.Runtime.Modules {
		lines = append(lines, "module load "+module)
	}
	if cfg.Runtime.CondaEnv != "" {
		lines = append(lines, "source activate "+cfg.Runtime.CondaEnv)
	}
	lines = append(lines, strings.Join(boltzArgs(&cfg.Boltz, cfg.Slurm.CpusPerTask, item.Path), " "))
	lines = append(lines, `echo "job ${SLURM_JOB_ID} finished $(date)"`)
	return lines
}

// boltzArgs assembles the boltz predict invocation. Argument order is fixed
// so rendered scripts are reproducible for a given configuration.
func boltzArgs(cfg *configuration.BoltzConfig, cpusPerTask int, inputPath string) []string {
	args := []string{"boltz", "predict", inputPath}
	if cfg.UseMSAServer {
		args = append(args, "--use_msa_server")
	}
	args = append(args, "--cache", cfg.CacheDir)
	if cfg.LimitPreprocessingThreads {
		args = append(args, "--preprocessing-threads", strconv.Itoa(cpusPerTask))
	}
	if cfg.Override {
		args = append(args, "--override")
	}
	if cfg.OutputFormat != "" {
		args = append(args, "--output_format", strings.ToLower(cfg.OutputFormat))
	}
	return args
}

// Script prints the job script for one input file without submitting it.
func (a *App) Script(inputPath string) error {
	if err := a.validateParams(); err != nil {
		return err
	}
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return errors.WithStack(&boltzerrors.ErrNotFound{
				Type:  "input file",
				Value: inputPath,
			})
		}
		return errors.Wrapf(err, "error reading input file %s", inputPath)
	}
	item := &WorkItem{
		Name: strings.TrimSuffix(filepath.Base(inputPath), a.Params.Config.Inputs.Suffix),
		Path: inputPath,
	}
	fmt.Fprint(a.Out, JobScript(a.Params.Config, item).Render())
	return nil
}
