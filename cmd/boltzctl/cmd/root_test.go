package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldlab/boltzctl/internal/boltzctl"
)

func TestScriptCmd(t *testing.T) {
	dir := writeInputs(t, "7pqr.yaml")

	a := boltzctl.New()
	cmd := scriptCmdWithApp(a)
	buf := hijack(t, cmd, a, &fakeScheduler{})

	cmd.SetArgs([]string{filepath.Join(dir, "7pqr.yaml")})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "#!/bin/bash")
	assert.Contains(t, out, "#SBATCH --job-name=boltz_7pqr")
	assert.Contains(t, out, "boltz predict")
}

func TestScriptCmdRequiresExactlyOneArgument(t *testing.T) {
	a := boltzctl.New()
	cmd := scriptCmdWithApp(a)
	hijack(t, cmd, a, &fakeScheduler{})

	cmd.SetArgs([]string{"a.yaml", "b.yaml"})

	require.Error(t, cmd.Execute())
}

func TestConfigCmd(t *testing.T) {
	a := boltzctl.New()
	cmd := configCmdWithApp(a)
	buf := hijack(t, cmd, a, &fakeScheduler{})

	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Account:")
	assert.Contains(t, out, "Partition:")
	assert.Contains(t, out, "Cache directory:")
}

func TestVersionCmd(t *testing.T) {
	a := boltzctl.New()
	cmd := versionCmdWithApp(a)
	buf := hijack(t, cmd, a, &fakeScheduler{})

	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	for _, s := range []string{"Version", "Commit", "Go version", "Built"} {
		assert.Contains(t, out, s)
	}
}
