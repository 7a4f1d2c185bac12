// Package config loads settings for the tesseract CLI.
//
// The library packages (client, gateway, wire) are configured through
// options in code and never read files. This package serves the CLI only:
// it merges defaults, ~/.tesseract/config.toml, and TESSERACT_* environment
// variables, in that precedence order.
package config

import "github.com/spf13/viper"

// Config holds the tesseract CLI settings.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig locates the query engine.
type EngineConfig struct {
	Module string `mapstructure:"module"` // path to the engine WASM module
}

// LogConfig controls CLI logging output.
type LogConfig struct {
	Debug bool `mapstructure:"debug"` // log request and response payloads
	JSON  bool `mapstructure:"json"`  // machine-readable log lines instead of console output
}

// SetDefaults registers every configuration key with its default value.
// Registering the keys also makes env-only values visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("engine.module", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.json", false)
}
