// Package config loads CLI defaults for the phpfront tool from an
// optional YAML file, environment variables, and flag overrides, in
// that order of increasing priority.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the settings the phpfront command line honors.
type Config struct {
	// Format is the diagnostic/AST rendering: "text" or "json".
	Format string `mapstructure:"format"`
	// Stats prints a byte/statement/error count summary after parsing.
	Stats bool `mapstructure:"stats"`
	// FailOnError makes the CLI exit non-zero when parsing produced
	// any diagnostics, instead of always exiting 0 for a completed parse.
	FailOnError bool `mapstructure:"fail_on_error"`
}

// Default returns the settings used when no config file, environment
// variable, or flag overrides one.
func Default() *Config {
	return &Config{
		Format:      "text",
		Stats:       false,
		FailOnError: false,
	}
}

// Load reads configPath (if non-empty and present) as YAML, then
// overlays PHPFRONT_-prefixed environment variables, into a fresh
// viper instance seeded with Default(). A missing configPath is not
// an error: defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("format", def.Format)
	v.SetDefault("stats", def.Stats)
	v.SetDefault("fail_on_error", def.FailOnError)

	v.SetEnvPrefix("PHPFRONT")
	bindEnv(v, "format")
	bindEnv(v, "stats")
	bindEnv(v, "fail_on_error")

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("checking config file %s: %w", configPath, err)
			}
		} else {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func bindEnv(v *viper.Viper, key string) {
	_ = v.BindEnv(key)
}
