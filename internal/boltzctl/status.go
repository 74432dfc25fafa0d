package boltzctl

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/avast/retry-go"
	log "github.com/sirupsen/logrus"

	"github.com/foldlab/boltzctl/pkg/slurm"
)

type StatusOptions struct {
	// Watch keeps polling until every job has left the queue.
	Watch bool
	// PollInterval overrides the configured poll interval when positive.
	PollInterval time.Duration
}

// Status prints the scheduler state of the given jobs, one line per job in
// the order given. With Watch enabled it keeps polling until no job is
// active any more.
func (a *App) Status(ctx context.Context, jobIds []string, opts StatusOptions) error {
	if err := a.validateParams(); err != nil {
		return err
	}
	cfg := a.Params.Config

	pollInterval := cfg.Scheduler.StatusPollInterval
	if opts.PollInterval > 0 {
		pollInterval = opts.PollInterval
	}

	for {
		states, err := a.queryJobStates(ctx, jobIds)
		if err != nil {
			return err
		}
		a.printJobStates(jobIds, states)

		if !opts.Watch || !anyActive(states) {
			return nil
		}
		fmt.Fprintln(a.Out)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// queryJobStates wraps the scheduler query in retries so a transient squeue
// failure does not abort a watch.
func (a *App) queryJobStates(ctx context.Context, jobIds []string) (map[string]slurm.JobState, error) {
	var states map[string]slurm.JobState
	err := retry.Do(
		func() error {
			var err error
			states, err = a.Params.Scheduler.JobStates(ctx, jobIds)
			return err
		},
		retry.Attempts(a.Params.Config.Scheduler.StatusRetries),
		retry.Delay(a.Params.Config.Scheduler.StatusRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).Warnf("job state query failed, retrying (attempt %d)", n+1)
		}),
	)
	return states, err
}

func (a *App) printJobStates(jobIds []string, states map[string]slurm.JobState) {
	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	defer w.Flush()
	for _, jobId := range jobIds {
		fmt.Fprintf(w, "%s\t%s\n", jobId, states[jobId])
	}
}

func anyActive(states map[string]slurm.JobState) bool {
	for _, state := range states {
		if state.Active() {
			return true
		}
	}
	return false
}
