package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. NECOMIND_INTERVAL.
	EnvPrefix = "NECOMIND"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/necomind"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
)

// flagKeys maps viper keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"interval":    "interval",
	"poll":        "poll",
	"gpu_timeout": "gpu-timeout",
	"log.level":   "log-level",
	"log.file":    "log-file",
}

// Find locates the config file:
// 1. Explicit path (from --config flag), which must exist
// 2. ~/.config/necomind/config.yaml, if present
//
// Returns an empty string when there is no config file.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads settings from path (optional), the environment and flags
// (optional), then validates the result.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check "+path+" exists and is valid YAML")
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Durations look like 1s or 250ms; color is true or false")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("interval", d.Interval.String())
	v.SetDefault("poll", d.Poll.String())
	v.SetDefault("gpu_timeout", d.GPUTimeout.String())
	v.SetDefault("color", d.Color)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// bindFlags wires flags that exist on the set. --no-color is the inverse of
// the color key, so it is applied as an override when given.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't bind --"+name, "")
		}
	}

	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		if noColor, err := flags.GetBool("no-color"); err == nil && noColor {
			v.Set("color", false)
		}
	}
	return nil
}
