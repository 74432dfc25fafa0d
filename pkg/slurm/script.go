package slurm

import (
	"fmt"
	"strings"
)

// ScriptSpec describes a batch job script: the resource directives making up
// the #SBATCH header, and the shell lines making up the body.
type ScriptSpec struct {
	JobName       string
	Account       string
	QOS           string
	Reservation   string
	NodeList      string
	Ntasks        int
	CpusPerTask   int
	NtasksPerNode int
	Memory        string
	TimeLimit     string
	Partition     string
	Gres          string
	OutputPath    string
	ErrorPath     string

	// Body holds the shell lines executed once the job starts.
	Body []string
}

// Render produces the script text submitted to the scheduler. Every directive
// is emitted on every render, in a fixed order; scheduler-side tooling
// matches on this header, so the order must not change.
func (s *ScriptSpec) Render() string {
	lines := append(s.header(), s.Body...)
	return strings.Join(lines, "\n") + "\n"
}

func (s *ScriptSpec) header() []string {
	return []string{
		"#!/bin/bash",
		"#SBATCH --job-name=" + s.JobName,
		"#SBATCH --account=" + s.Account,
		"#SBATCH --qos=" + s.QOS,
		"#SBATCH --reservation=" + s.Reservation,
		"#SBATCH --nodelist=" + s.NodeList,
		fmt.Sprintf("#SBATCH --ntasks=%d", s.Ntasks),
		fmt.Sprintf("#SBATCH --cpus-per-task=%d", s.CpusPerTask),
		fmt.Sprintf("#SBATCH --ntasks-per-node=%d", s.NtasksPerNode),
		"#SBATCH --mem=" + s.Memory,
		"#SBATCH --time=" + s.TimeLimit,
		"#SBATCH --partition=" + s.Partition,
		"#SBATCH --gres=" + s.Gres,
		"#SBATCH --output=" + s.OutputPath,
		"#SBATCH --error=" + s.ErrorPath,
	}
}
