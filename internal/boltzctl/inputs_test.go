package boltzctl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
)

func TestDiscoverInputs(t *testing.T) {
	dir := writeInputs(t, "beta.yaml", "alpha.yaml", "gamma.yaml", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.yaml"), 0o755))

	items, err := DiscoverInputs(dir, ".yaml")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "alpha", items[0].Name)
	assert.Equal(t, "beta", items[1].Name)
	assert.Equal(t, "gamma", items[2].Name)
	assert.Equal(t, filepath.Join(dir, "alpha.yaml"), items[0].Path)
}

func TestDiscoverInputsMissingDirectory(t *testing.T) {
	_, err := DiscoverInputs(filepath.Join(t.TempDir(), "missing"), ".yaml")
	require.Error(t, err)

	var notFound *boltzerrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestDiscoverInputsNoMatches(t *testing.T) {
	dir := writeInputs(t, "notes.txt", "job.json")

	_, err := DiscoverInputs(dir, ".yaml")
	require.Error(t, err)

	var noInput *boltzerrors.ErrNoInput
	assert.ErrorAs(t, err, &noInput)
	assert.Contains(t, err.Error(), "*.yaml")
}

func TestDiscoverInputsSuffixIsNotAnExtension(t *testing.T) {
	dir := writeInputs(t, "a_input.yml", "b.yml", "c.yaml")

	items, err := DiscoverInputs(dir, "_input.yml")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Name)
}
