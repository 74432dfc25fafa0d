package boltzctl

import (
	"context"
	"fmt"
	"strings"
)

// Cancel asks the scheduler to cancel the given jobs.
func (a *App) Cancel(ctx context.Context, jobIds []string) error {
	if err := a.validateParams(); err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Requesting cancellation of %d job(s)\n", len(jobIds))
	if err := a.Params.Scheduler.CancelJobs(ctx, jobIds); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Requested cancellation for jobs %s\n", strings.Join(jobIds, ", "))
	return nil
}
