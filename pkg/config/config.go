/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration for the Chomsky classifier. Values come from viper (config file,
CHOMSKY_ environment variables and bound command flags) and are validated with struct tags.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CHOMSKY_BOUNDS_MAX_LEN.
const EnvPrefix = "CHOMSKY"

// ReportConfig controls where reports are written.
type ReportConfig struct {
	OutputDir string `json:"output_dir" mapstructure:"output_dir" validate:"required"`
	Title     string `json:"title" mapstructure:"title" validate:"required"`
}

// Config is the full classifier configuration.
type Config struct {
	Bounds grammar.Bounds       `json:"bounds" mapstructure:"bounds"`
	Log    logging.LoggerConfig `json:"log" mapstructure:"log"`
	Report ReportConfig         `json:"report" mapstructure:"report"`
	Strict bool                 `json:"strict" mapstructure:"strict"`
}

var validate = validator.New()

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Bounds: grammar.DefaultBounds(),
		Log:    *logging.DefaultConfig(),
		Report: ReportConfig{
			OutputDir: "./reports",
			Title:     "Chomsky Classification Report",
		},
	}
}

// SetDefaults registers every key of Default on v. Keys must be known to viper
// for AutomaticEnv to pick them up during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("bounds.max_len", d.Bounds.MaxLen)
	v.SetDefault("bounds.max_steps", d.Bounds.MaxSteps)
	v.SetDefault("bounds.max_queue", d.Bounds.MaxQueue)

	v.SetDefault("log.level", string(d.Log.Level))
	v.SetDefault("log.format", string(d.Log.Format))
	v.SetDefault("log.output_dir", d.Log.OutputDir)
	v.SetDefault("log.timestamp", d.Log.Timestamp)
	v.SetDefault("log.caller", d.Log.Caller)
	v.SetDefault("log.colors", d.Log.Colors)
	v.SetDefault("log.max_files", d.Log.MaxFiles)

	v.SetDefault("report.output_dir", d.Report.OutputDir)
	v.SetDefault("report.title", d.Report.Title)
	v.SetDefault("strict", d.Strict)
}

// BindEnv enables CHOMSKY_ environment overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ReadFile reads an optional config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks bounds, report settings and the logger configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
