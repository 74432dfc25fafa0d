package boltzctl

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/foldlab/boltzctl/internal/boltzctl/configuration"
	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
	"github.com/foldlab/boltzctl/pkg/slurm"
)

// Scheduler is the slice of the SLURM client the app relies on.
// Tests substitute a fake to avoid shelling out to sbatch and friends.
type Scheduler interface {
	Submit(ctx context.Context, script string) (string, error)
	JobStates(ctx context.Context, jobIds []string) (map[string]slurm.JobState, error)
	CancelJobs(ctx context.Context, jobIds []string) error
}

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out,
	// but can be overridden in tests to make assertions on the application's output.
	Out io.Writer
}

// Params struct holds all user-customizable parameters.
// Using a single struct for all CLI commands ensures that all flags are distinct
// and that they can be provided either dynamically on a command line, or
// statically in a config file that's reused between command runs.
type Params struct {
	Config    *configuration.BoltzctlConfig
	Scheduler Scheduler
}

// New instantiates an App with default parameters, including standard output.
func New() *App {
	return &App{
		Params: &Params{},
		Out:    os.Stdout,
	}
}

// validateParams validates a.Params.
func (a *App) validateParams() error {
	if a.Params.Config == nil {
		return errors.WithStack(&boltzerrors.ErrInvalidArgument{
			Name:    "Config",
			Value:   a.Params.Config,
			Message: "not provided",
		})
	}
	if a.Params.Scheduler == nil {
		return errors.WithStack(&boltzerrors.ErrInvalidArgument{
			Name:    "Scheduler",
			Value:   a.Params.Scheduler,
			Message: "not provided",
		})
	}
	return nil
}
