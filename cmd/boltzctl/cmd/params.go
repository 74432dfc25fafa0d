package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/foldlab/boltzctl/internal/boltzctl"
	"github.com/foldlab/boltzctl/internal/boltzctl/configuration"
	"github.com/foldlab/boltzctl/internal/common"
	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
	commonconfig "github.com/foldlab/boltzctl/internal/common/config"
	"github.com/foldlab/boltzctl/pkg/slurm"
)

var (
	cfgFile string
	verbose bool
)

// initParams loads configuration and wires the SLURM client into the app.
// It runs as PreRunE on every command, so tests can hijack it to install fakes.
func initParams(cmd *cobra.Command, app *boltzctl.App) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := configuration.DefaultBoltzctlConfig()
	if err := common.LoadConfig(cfg, cfgFile); err != nil {
		return err
	}
	if err := commonconfig.Validate(cfg); err != nil {
		commonconfig.LogValidationErrors(err)
		return errors.WithStack(&boltzerrors.ErrInvalidArgument{
			Name:    "config",
			Value:   cfgFile,
			Message: "invalid configuration",
		})
	}

	app.Params.Config = cfg
	app.Params.Scheduler = slurm.NewClient(cfg.Scheduler.Connection)
	return nil
}

// signalContext returns a context that is cancelled on SIGINT/SIGTERM.
// Ensures a running submission or watch stops cleanly on ctrl-C.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-stopSignal:
			cancel()
		}
	}()
	return ctx, cancel
}
