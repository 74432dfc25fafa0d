package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foldlab/boltzctl/internal/common/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, config.Validate(DefaultBoltzctlConfig()))
}

func TestValidateCatchesBadValues(t *testing.T) {
	tests := map[string]func(*BoltzctlConfig){
		"empty partition":    func(cfg *BoltzctlConfig) { cfg.Slurm.Partition = "" },
		"empty input suffix": func(cfg *BoltzctlConfig) { cfg.Inputs.Suffix = "" },
		"zero cpus per task": func(cfg *BoltzctlConfig) { cfg.Slurm.CpusPerTask = 0 },
		"negative ntasks":    func(cfg *BoltzctlConfig) { cfg.Slurm.Ntasks = -1 },
		"empty cache dir":    func(cfg *BoltzctlConfig) { cfg.Boltz.CacheDir = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultBoltzctlConfig()
			mutate(cfg)
			assert.Error(t, config.Validate(cfg))
		})
	}
}
