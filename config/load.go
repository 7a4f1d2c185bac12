package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tesseractdb/go-tesseract/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the CLI configuration, caching the result for later calls.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadWithViper decodes configuration from a caller-provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific TOML file, skipping the
// user config and environment merge.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	return LoadWithViper(v)
}

// Reset clears the cached configuration so the next Load re-reads all
// sources. Tests use this to reload under a different environment.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// UserConfigPath returns the per-user config file path,
// ~/.tesseract/config.toml, or "" when the home directory is unknown.
func UserConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".tesseract", "config.toml")
}

// initViper builds the shared Viper instance: defaults, then the user
// config file if present, then TESSERACT_* environment variables.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("TESSERACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := UserConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("toml")
			// Skip an unreadable user config; flags and env vars still apply.
			_ = v.ReadInConfig()
		}
	}

	viperInstance = v
	return v
}
