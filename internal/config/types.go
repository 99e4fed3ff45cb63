// Package config loads NecoMind's runtime settings through viper.
//
// Settings come from, highest priority first: command-line flags,
// NECOMIND_* environment variables, the YAML config file, and built-in
// defaults. None of them change what the dashboard shows; they only tune
// timing, color and logging.
package config

import "time"

// Config holds every runtime setting.
type Config struct {
	// Interval is how often CPU and memory are re-sampled.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Poll bounds each wait for keyboard input, and so the redraw rate.
	Poll time.Duration `yaml:"poll" mapstructure:"poll"`

	// GPUTimeout bounds each GPU lookup command.
	GPUTimeout time.Duration `yaml:"gpu_timeout" mapstructure:"gpu_timeout"`

	// Color toggles ANSI color output.
	Color bool `yaml:"color" mapstructure:"color"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`

	// File receives log output while the dashboard is on screen.
	// Empty means logs are discarded during the dashboard.
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Interval:   time.Second,
		Poll:       50 * time.Millisecond,
		GPUTimeout: 3 * time.Second,
		Color:      true,
		Log: LogConfig{
			Level: "warn",
		},
	}
}
