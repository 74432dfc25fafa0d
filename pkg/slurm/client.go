package slurm

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultSbatchCommand  = "sbatch"
	DefaultSqueueCommand  = "squeue"
	DefaultScancelCommand = "scancel"

	// DefaultCommandTimeout bounds a single scheduler invocation. Submission
	// commands can block for a while when the controller is busy, so this is
	// deliberately generous.
	DefaultCommandTimeout = time.Minute
)

// ConnectionDetails configures how the client reaches the scheduler's
// command-line interface. Bare command names are resolved via PATH.
type ConnectionDetails struct {
	SbatchCommand  string
	SqueueCommand  string
	ScancelCommand string
	CommandTimeout time.Duration
}

func (d *ConnectionDetails) applyDefaults() {
	if d.SbatchCommand == "" {
		d.SbatchCommand = DefaultSbatchCommand
	}
	if d.SqueueCommand == "" {
		d.SqueueCommand = DefaultSqueueCommand
	}
	if d.ScancelCommand == "" {
		d.ScancelCommand = DefaultScancelCommand
	}
	if d.CommandTimeout == 0 {
		d.CommandTimeout = DefaultCommandTimeout
	}
}

// JobState is a scheduler-reported job state, e.g. PENDING or RUNNING.
type JobState string

// JobStateFinished is synthesised by the client for jobs the queue no longer
// reports; the scheduler itself only lists jobs that are still queued or
// running.
const JobStateFinished JobState = "FINISHED"

// Active reports whether the job is still in the queue.
func (s JobState) Active() bool {
	return s != JobStateFinished
}

// Client submits and manages batch jobs through the scheduler's command-line
// interface. Methods are safe for sequential use; the client holds no state
// beyond its configuration.
type Client struct {
	details ConnectionDetails
	runner  CommandRunner
}

// NewClient returns a client backed by the local scheduler binaries.
// Zero-valued fields of details fall back to defaults.
func NewClient(details ConnectionDetails) *Client {
	details.applyDefaults()
	return &Client{details: details, runner: execRunner{}}
}

// Submit pipes a rendered job script to sbatch and returns the job id the
// scheduler assigned. A submission that exits zero but produces no parseable
// job id is reported as an error.
func (c *Client) Submit(ctx context.Context, script string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.details.CommandTimeout)
	defer cancel()

	out, err := c.runner.Output(ctx, script, c.details.SbatchCommand)
	if err != nil {
		return "", errors.WithMessage(err, "error submitting job script")
	}
	jobId, err := ParseJobId(string(out))
	if err != nil {
		return "", err
	}
	return jobId, nil
}

// JobStates reports the queue state of each given job id. Ids the queue no
// longer lists are reported as JobStateFinished.
func (c *Client) JobStates(ctx context.Context, jobIds []string) (map[string]JobState, error) {
	ctx, cancel := context.WithTimeout(ctx, c.details.CommandTimeout)
	defer cancel()

	out, err := c.runner.Output(ctx, "", c.details.SqueueCommand,
		"-h", "-j", strings.Join(jobIds, ","), "-o", "%i %T")
	if err != nil {
		return nil, errors.WithMessage(err, "error querying job states")
	}

	states := ParseQueueStates(string(out))
	for _, jobId := range jobIds {
		if _, ok := states[jobId]; !ok {
			states[jobId] = JobStateFinished
		}
	}
	return states, nil
}

// CancelJobs requests cancellation of the given job ids.
func (c *Client) CancelJobs(ctx context.Context, jobIds []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.details.CommandTimeout)
	defer cancel()

	_, err := c.runner.Output(ctx, "", c.details.ScancelCommand, jobIds...)
	return errors.WithMessage(err, "error cancelling jobs")
}
