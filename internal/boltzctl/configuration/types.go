package configuration

import (
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/foldlab/boltzctl/pkg/slurm"
)

type BoltzctlConfig struct {
	Inputs    InputsConfig
	Slurm     SlurmConfig
	Boltz     BoltzConfig
	Runtime   RuntimeConfig
	Scheduler SchedulerConfig
}

// InputsConfig describes where candidate inputs live and how they are named.
type InputsConfig struct {
	// Directory scanned for input files.
	Dir string `validate:"required"`
	// Filename suffix an entry must carry to be picked up, e.g. ".yaml".
	Suffix string `validate:"required"`
	// Directory job stdout/stderr logs are written to. Created on demand.
	LogDir string `validate:"required"`
	// Prefix prepended to the input stem to form the job name.
	JobNamePrefix string
}

// SlurmConfig holds the resource directives stamped into every job script.
// One submission run renders all of its scripts from the same values.
type SlurmConfig struct {
	Account       string `validate:"required"`
	QOS           string `validate:"required"`
	Reservation   string `validate:"required"`
	NodeList      string `validate:"required"`
	Ntasks        int    `validate:"min=1"`
	CpusPerTask   int    `validate:"min=1"`
	NtasksPerNode int    `validate:"min=1"`
	Memory        string `validate:"required"`
	TimeLimit     string `validate:"required"`
	Partition     string `validate:"required"`
	Gres          string `validate:"required"`
}

// BoltzConfig controls the boltz predict invocation inside each job.
type BoltzConfig struct {
	// Model and sequence cache shared between jobs.
	CacheDir string `validate:"required"`
	// Compute MSAs via the public server instead of expecting precomputed ones.
	UseMSAServer bool
	// Cap preprocessing threads at the cpus-per-task allocation.
	LimitPreprocessingThreads bool
	// Overwrite results from a previous run of the same input.
	Override bool
	// Output format, e.g. "mmcif" or "pdb". Passed to boltz lower-cased.
	OutputFormat string
}

// RuntimeConfig prepares the environment the job body runs in.
type RuntimeConfig struct {
	// Environment modules loaded before activating the conda environment.
	Modules []string
	// Conda environment containing the boltz install.
	CondaEnv string `validate:"required"`
}

// SchedulerConfig wires the local SLURM client.
type SchedulerConfig struct {
	Connection slurm.ConnectionDetails
	// How often job states are polled while watching a submission.
	StatusPollInterval time.Duration
	// Attempts per squeue query before a poll is abandoned.
	StatusRetries uint
	// Pause between attempts of a failed squeue query.
	StatusRetryDelay time.Duration
}

func DefaultBoltzctlConfig() *BoltzctlConfig {
	cacheDir := ".boltz"
	if expanded, err := homedir.Expand("~/.boltz"); err == nil {
		cacheDir = expanded
	}
	return &BoltzctlConfig{
		Inputs: InputsConfig{
			Dir:           "inputs",
			Suffix:        ".yaml",
			LogDir:        "logs",
			JobNamePrefix: "boltz_",
		},
		Slurm: SlurmConfig{
			Account:       "structbio",
			QOS:           "normal",
			Reservation:   "boltz",
			NodeList:      "gpu[001-004]",
			Ntasks:        1,
			CpusPerTask:   8,
			NtasksPerNode: 1,
			Memory:        "64G",
			TimeLimit:     "24:00:00",
			Partition:     "gpu",
			Gres:          "gpu:1",
		},
		Boltz: BoltzConfig{
			CacheDir:                  cacheDir,
			UseMSAServer:              true,
			LimitPreprocessingThreads: true,
			Override:                  false,
			OutputFormat:              "mmcif",
		},
		Runtime: RuntimeConfig{
			Modules:  []string{"cuda/12.4"},
			CondaEnv: "boltz",
		},
		Scheduler: SchedulerConfig{
			Connection: slurm.ConnectionDetails{
				SbatchCommand:  slurm.DefaultSbatchCommand,
				SqueueCommand:  slurm.DefaultSqueueCommand,
				ScancelCommand: slurm.DefaultScancelCommand,
				CommandTimeout: slurm.DefaultCommandTimeout,
			},
			StatusPollInterval: 15 * time.Second,
			StatusRetries:      5,
			StatusRetryDelay:   time.Second,
		},
	}
}
