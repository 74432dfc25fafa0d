package boltzctl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
)

func TestSubmit(t *testing.T) {
	app, scheduler, buf := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml", "beta.yaml", "gamma.yaml")

	summary, err := app.Submit(context.Background(), SubmitOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, []string{"101", "102", "103"}, summary.JobIds())
	assert.NotEmpty(t, summary.RunId)

	require.Len(t, scheduler.submitCalls, 3)
	assert.True(t, strings.HasPrefix(scheduler.submitCalls[0], "#!/bin/bash\n"))
	assert.Contains(t, scheduler.submitCalls[0], "#SBATCH --job-name=boltz_alpha\n")
	assert.Contains(t, scheduler.submitCalls[1], "#SBATCH --job-name=boltz_beta\n")

	out := buf.String()
	assert.Contains(t, out, "submitted alpha: job id 101\n")
	assert.Contains(t, out, "submitted beta: job id 102\n")
	assert.Contains(t, out, "submitted gamma: job id 103\n")
	assert.Contains(t, out, "======= SUBMISSION SUMMARY =======")
	assert.Contains(t, out, "Successes: 3\n")
	assert.Contains(t, out, "Failures: 0\n")
	assert.Contains(t, out, "Configuration used:")

	assert.DirExists(t, app.Params.Config.Inputs.LogDir)
}

func TestSubmitContinuesPastFailures(t *testing.T) {
	app, scheduler, buf := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml", "beta.yaml", "gamma.yaml")
	scheduler.submit = func(script string) (string, error) {
		if strings.Contains(script, "beta") {
			return "", errors.New("sbatch: error: invalid qos")
		}
		return fmt.Sprintf("%d", 100+len(scheduler.submitCalls)), nil
	}

	summary, err := app.Submit(context.Background(), SubmitOptions{})
	require.NoError(t, err, "partial failure is reported in the summary, not as an error")

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, scheduler.submitCalls, 3, "remaining inputs are still attempted")

	out := buf.String()
	assert.Contains(t, out, "failed to submit beta: ")
	assert.Contains(t, out, "invalid qos")
	assert.Contains(t, out, "Successes: 2\n")
	assert.Contains(t, out, "Failures: 1\n")
}

func TestSubmitStrict(t *testing.T) {
	app, scheduler, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml", "beta.yaml")
	scheduler.submit = func(script string) (string, error) {
		return "", errors.New("sbatch: connection refused")
	}

	summary, err := app.Submit(context.Background(), SubmitOptions{Strict: true})
	require.Error(t, err)

	assert.Equal(t, 2, summary.Failed)
	assert.Contains(t, err.Error(), "input alpha")
	assert.Contains(t, err.Error(), "input beta")
	assert.Len(t, scheduler.submitCalls, 2, "strict mode still attempts every input")
}

func TestSubmitStrictAllSucceeded(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml")

	summary, err := app.Submit(context.Background(), SubmitOptions{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
}

func TestSubmitDryRun(t *testing.T) {
	app, scheduler, buf := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml")

	summary, err := app.Submit(context.Background(), SubmitOptions{DryRun: true})
	require.NoError(t, err)

	assert.Empty(t, scheduler.submitCalls)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Empty(t, summary.JobIds())

	out := buf.String()
	assert.Contains(t, out, "rendered job script for alpha (dry run)\n")
	assert.Contains(t, out, "Dry run: no jobs were handed to the scheduler\n")

	assert.NoDirExists(t, app.Params.Config.Inputs.LogDir, "a dry run leaves the filesystem alone")
}

func TestSubmitMissingInputDirectory(t *testing.T) {
	app, scheduler, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = filepath.Join(t.TempDir(), "missing")

	_, err := app.Submit(context.Background(), SubmitOptions{})
	require.Error(t, err)

	var notFound *boltzerrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Empty(t, scheduler.submitCalls)
}

func TestSubmitNoInputs(t *testing.T) {
	app, scheduler, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "notes.txt")

	_, err := app.Submit(context.Background(), SubmitOptions{})
	require.Error(t, err)

	var noInput *boltzerrors.ErrNoInput
	assert.ErrorAs(t, err, &noInput)
	assert.Empty(t, scheduler.submitCalls)
}

func TestSubmitInputDirOverride(t *testing.T) {
	app, scheduler, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = filepath.Join(t.TempDir(), "missing")
	override := writeInputs(t, "alpha.yaml")

	summary, err := app.Submit(context.Background(), SubmitOptions{InputDir: override})
	require.NoError(t, err)

	assert.Equal(t, override, summary.InputDir)
	assert.Len(t, scheduler.submitCalls, 1)
}

func TestSubmitCancelledContext(t *testing.T) {
	app, scheduler, _ := newTestApp(t)
	app.Params.Config.Inputs.Dir = writeInputs(t, "alpha.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.Submit(ctx, SubmitOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, scheduler.submitCalls)
}
