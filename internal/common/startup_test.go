package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Account string
	Memory  string
	Timeout time.Duration
	Modules []string
}

func TestLoadConfigMergesOntoDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "account: chemistry\ntimeout: 90s\nmodules: cuda/12.4,gcc/13\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := testConfig{Account: "structbio", Memory: "64G", Timeout: time.Minute}
	require.NoError(t, LoadConfig(&cfg, path))

	assert.Equal(t, "chemistry", cfg.Account)
	assert.Equal(t, "64G", cfg.Memory, "fields absent from the file keep their defaults")
	assert.Equal(t, 90*time.Second, cfg.Timeout, "durations decode from strings")
	assert.Equal(t, []string{"cuda/12.4", "gcc/13"}, cfg.Modules, "slices decode from comma-separated strings")
}

func TestLoadConfigEmptyFileKeepsDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cfg := testConfig{Account: "structbio", Timeout: time.Minute}
	require.NoError(t, LoadConfig(&cfg, path))

	assert.Equal(t, "structbio", cfg.Account)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := testConfig{}
	err := LoadConfig(&cfg, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
