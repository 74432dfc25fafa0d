package common

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/foldlab/boltzctl/internal/common/config"
	"github.com/foldlab/boltzctl/internal/common/logging"
)

const (
	// homeConfigName is the name of the optional per-user config file,
	// $HOME/.boltzctl.yaml.
	homeConfigName = ".boltzctl"
	envPrefix      = "BOLTZCTL"
)

// ConfigureLogging sets up logging suitable for a long-running process:
// timestamped text lines on stdout.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging sets up logging suitable for CLI use: bare
// messages on stderr, keeping stdout free for command output.
func ConfigureCommandLineLogging() {
	commandLineFormatter := new(logging.CommandLineFormatter)
	log.SetFormatter(commandLineFormatter)
	log.SetOutput(os.Stderr)
}

// LoadConfig merges configuration from, in increasing order of precedence:
// a boltzctl-defaults.yaml next to the executable, $HOME/.boltzctl.yaml, an
// explicitly given config file, and BOLTZCTL_* environment variables; the
// merged result is unmarshalled onto cfg. Keys absent from every source
// leave the corresponding field of cfg untouched, so callers pass in the
// compiled-in defaults.
func LoadConfig(cfg interface{}, userSpecifiedConfig string) error {
	if exePath, err := os.Executable(); err == nil {
		viper.SetConfigFile(filepath.Join(filepath.Dir(exePath), "boltzctl-defaults.yaml"))
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
			case *os.PathError:
				// No defaults file next to the executable is fine.
			default:
				return errors.Wrapf(err, "error reading config file %s", viper.ConfigFileUsed())
			}
		}
	}

	if userSpecifiedConfig != "" {
		viper.SetConfigFile(userSpecifiedConfig)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.WithMessage(err, "error finding user home directory")
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(homeConfigName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.MergeInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// Only happens when looking for the optional home-directory
			// config; users don't have to provide one.
		default:
			return errors.Wrapf(err, "error reading config file %s", viper.ConfigFileUsed())
		}
	}

	return errors.WithMessage(viper.Unmarshal(cfg, config.CustomHooks...), "error unmarshalling config")
}
