package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
	"github.com/CtrlAltSam/NecoMind/internal/logging"
)

// Limits enforced by Validate.
const (
	MinInterval = 100 * time.Millisecond
	MinPoll     = time.Millisecond
	MaxPoll     = time.Second
)

// Validate checks the config and returns a structured CONFIG error for the
// first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. --interval 1s", MinInterval))
	}

	if cfg.Poll < MinPoll || cfg.Poll > MaxPoll {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Input poll timeout %s is out of range", cfg.Poll),
			fmt.Sprintf("Pick something between %s and %s; 50ms is the default", MinPoll, MaxPoll))
	}

	if cfg.GPUTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"GPU lookup timeout must be positive",
			"Set gpu_timeout to something like 3s")
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log level '%s'", cfg.Log.Level),
			"Use one of: "+strings.Join(logging.Levels, ", "))
	}

	return nil
}
