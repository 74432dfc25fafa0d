package slurm

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseJobId extracts the job id from sbatch output. sbatch reports
// "Submitted batch job <id>"; the id is taken to be the last
// whitespace-delimited token so that site wrappers prefixing extra text
// still parse.
func ParseJobId(output string) (string, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return "", errors.Errorf("scheduler output %q contains no job id", output)
	}
	return fields[len(fields)-1], nil
}

// ParseQueueStates parses `squeue -h -o "%i %T"` output into a map from job
// id to state. Blank and malformed lines are skipped.
func ParseQueueStates(output string) map[string]JobState {
	states := make(map[string]JobState)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		states[fields[0]] = JobState(fields[1])
	}
	return states
}
