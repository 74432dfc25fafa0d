package cmd

import (
	"github.com/spf13/pflag"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func submitOptionsFromFlags(flags *pflag.FlagSet) (*boltzctl.SubmitOptions, error) {
	inputDir, err := flags.GetString("input-dir")
	if err != nil {
		return nil, err
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return nil, err
	}
	strict, err := flags.GetBool("strict")
	if err != nil {
		return nil, err
	}

	return &boltzctl.SubmitOptions{
		InputDir: inputDir,
		DryRun:   dryRun,
		Strict:   strict,
	}, nil
}

func statusOptionsFromFlags(flags *pflag.FlagSet) (*boltzctl.StatusOptions, error) {
	watch, err := flags.GetBool("watch")
	if err != nil {
		return nil, err
	}
	pollInterval, err := flags.GetDuration("poll-interval")
	if err != nil {
		return nil, err
	}

	return &boltzctl.StatusOptions{
		Watch:        watch,
		PollInterval: pollInterval,
	}, nil
}
