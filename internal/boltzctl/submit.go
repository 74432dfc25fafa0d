package boltzctl

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/foldlab/boltzctl/internal/common/util"
)

type SubmitOptions struct {
	// InputDir overrides the configured input directory when non-empty.
	InputDir string
	// DryRun renders job scripts without handing them to the scheduler.
	DryRun bool
	// Strict makes Submit return an error if any item failed to submit.
	// By default a run that submitted at least some jobs is not an error;
	// failures are reported in the summary instead.
	Strict bool
}

// SubmitResult is the outcome for a single work item.
type SubmitResult struct {
	Item  *WorkItem
	JobId string
	Err   error
}

// RunSummary aggregates the outcomes of one submission run.
type RunSummary struct {
	RunId     string
	InputDir  string
	Total     int
	Succeeded int
	Failed    int
	DryRun    bool
	Results   []SubmitResult
}

// Submit renders one job script per input file and pipes each to the
// scheduler. A submission failure for one item does not stop the run; the
// remaining items are still attempted and the failure is counted in the
// returned summary.
func (a *App) Submit(ctx context.Context, opts SubmitOptions) (*RunSummary, error) {
	if err := a.validateParams(); err != nil {
		return nil, err
	}
	cfg := a.Params.Config

	inputDir := cfg.Inputs.Dir
	if opts.InputDir != "" {
		inputDir = opts.InputDir
	}
	items, err := DiscoverInputs(inputDir, cfg.Inputs.Suffix)
	if err != nil {
		return nil, err
	}
	if !opts.DryRun {
		if err := os.MkdirAll(cfg.Inputs.LogDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "error creating log directory %s", cfg.Inputs.LogDir)
		}
	}

	summary := &RunSummary{
		RunId:    util.NewULID(),
		InputDir: inputDir,
		Total:    len(items),
		DryRun:   opts.DryRun,
	}
	log.WithFields(log.Fields{
		"runId":    summary.RunId,
		"inputDir": inputDir,
		"inputs":   len(items),
		"dryRun":   opts.DryRun,
	}).Info("starting submission run")

	start := time.Now()
	var allErrors *multierror.Error
	for _, item := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		script := JobScript(cfg, item).Render()
		if opts.DryRun {
			fmt.Fprintf(a.Out, "rendered job script for %s (dry run)\n", item.Name)
			summary.Succeeded++
			summary.Results = append(summary.Results, SubmitResult{Item: item})
			continue
		}

		jobId, err := a.Params.Scheduler.Submit(ctx, script)
		if err != nil {
			summary.Failed++
			summary.Results = append(summary.Results, SubmitResult{Item: item, Err: err})
			allErrors = multierror.Append(allErrors, errors.WithMessagef(err, "input %s", item.Name))
			fmt.Fprintf(a.Out, "failed to submit %s: %s\n", item.Name, err)
			continue
		}
		summary.Succeeded++
		summary.Results = append(summary.Results, SubmitResult{Item: item, JobId: jobId})
		fmt.Fprintf(a.Out, "submitted %s: job id %s\n", item.Name, jobId)
	}

	a.printSummary(summary, time.Since(start))
	if opts.Strict {
		return summary, allErrors.ErrorOrNil()
	}
	return summary, nil
}

// JobIds lists the scheduler ids of the successfully submitted jobs,
// in submission order.
func (s *RunSummary) JobIds() []string {
	jobIds := []string{}
	for _, result := range s.Results {
		if result.Err == nil && result.JobId != "" {
			jobIds = append(jobIds, result.JobId)
		}
	}
	return jobIds
}

func (a *App) printSummary(summary *RunSummary, elapsed time.Duration) {
	fmt.Fprintf(a.Out, "\n======= SUBMISSION SUMMARY =======\n")
	fmt.Fprintf(a.Out, "Processed %d input(s) in %s\n", summary.Total, elapsed.Round(time.Millisecond))
	fmt.Fprintf(a.Out, "Successes: %d\n", summary.Succeeded)
	fmt.Fprintf(a.Out, "Failures: %d\n", summary.Failed)
	if summary.DryRun {
		fmt.Fprintf(a.Out, "Dry run: no jobs were handed to the scheduler\n")
	}
	fmt.Fprintf(a.Out, "\nConfiguration used:\n")
	writeConfig(a.Out, a.Params.Config)
}
