// Package config loads runtime configuration for neoscope from the config
// file, NEOSCOPE_* environment variables, and CLI flags, in ascending
// precedence.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a neoscope invocation.
// Values are populated from .neoscope.yaml, NEOSCOPE_* env vars, and flags.
type Config struct {
	NEOCSV       string `mapstructure:"neo_csv"`
	CADJSON      string `mapstructure:"cad_json"`
	DefaultLimit int    `mapstructure:"default_limit"`
	PresetsPath  string `mapstructure:"presets_path"`
	Verbose      bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("neo_csv", "data/neos.csv")
	viper.SetDefault("cad_json", "data/cad.json")
	viper.SetDefault("default_limit", 10)
	viper.SetDefault("presets_path", ".neoscope/presets.toml")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
