package slurm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// CommandRunner abstracts the invocation of a scheduler binary. The contract
// is deliberately thin: run the command, return its standard output, and
// report a non-zero exit status as an error. The exec-backed implementation
// below is used in production; tests substitute fakes so that no scheduler
// needs to be installed.
type CommandRunner interface {
	// Output runs the named command, feeding stdin to the process if
	// non-empty, and returns the captured standard output.
	Output(ctx context.Context, stdin string, name string, args ...string) ([]byte, error)
}

// execRunner runs commands on the local host.
type execRunner struct{}

func (execRunner) Output(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), errors.Wrapf(err, "%s: %s", name, msg)
		}
		return stdout.Bytes(), errors.Wrapf(err, "error running %s", name)
	}
	return stdout.Bytes(), nil
}
