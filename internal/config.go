package internal

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/0xRadioAc7iv/go-employees/internal/logging"
)

type Config struct {
	DataFile string
	LogLevel string
	NoColor  bool
}

const DEFAULT_DATA_FILE = "employees.dat"
const DEFAULT_LOG_LEVEL = "warn"

// Keys shared by flags, environment variables (EMPLOYEES_ prefix) and
// config files.
const (
	KeyFile     = "file"
	KeyLogLevel = "log-level"
	KeyNoColor  = "no-color"
)

const EnvPrefix = "EMPLOYEES"

// NewViper returns a viper instance that also resolves every key from the
// environment, e.g. log-level from EMPLOYEES_LOG_LEVEL.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func DefaultConfig() *Config {
	return &Config{
		DataFile: DEFAULT_DATA_FILE,
		LogLevel: DEFAULT_LOG_LEVEL,
	}
}

// LoadConfig reads the resolved settings out of v, falling back to the
// defaults for anything unset.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if file := v.GetString(KeyFile); file != "" {
		cfg.DataFile = file
	}
	if level := v.GetString(KeyLogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg.NoColor = v.GetBool(KeyNoColor)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}
