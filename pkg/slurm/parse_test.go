package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobId(t *testing.T) {
	tests := map[string]struct {
		output string
		want   string
	}{
		"sbatch default output":  {"Submitted batch job 12345\n", "12345"},
		"bare id":                {"12345", "12345"},
		"surrounding whitespace": {"  12345  \n", "12345"},
		"wrapper banner before":  {"submitting as user alice\nSubmitted batch job 99\n", "99"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseJobId(tc.output)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseJobIdEmptyOutput(t *testing.T) {
	for _, output := range []string{"", "   ", "\n\t\n"} {
		_, err := ParseJobId(output)
		assert.Error(t, err)
	}
}

func TestParseQueueStates(t *testing.T) {
	output := "101 RUNNING\n102 PENDING\n\nmalformed\n103 COMPLETING extra\n"
	states := ParseQueueStates(output)
	assert.Equal(t, map[string]JobState{
		"101": "RUNNING",
		"102": "PENDING",
		"103": "COMPLETING",
	}, states)
}

func TestParseQueueStatesEmpty(t *testing.T) {
	assert.Empty(t, ParseQueueStates(""))
}
