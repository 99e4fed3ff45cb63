// Package logging builds the charmbracelet/log loggers NecoMind writes to.
//
// While the dashboard owns the screen nothing may reach the terminal, so the
// dashboard logger goes to a file or nowhere. One-shot commands log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

// Prefix is stamped on every log line.
const Prefix = "necomind"

// Levels lists the level names accepted by ParseLevel.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range Levels {
		if name == known {
			return log.ParseLevel(name)
		}
	}
	return log.InfoLevel, errors.New(errors.ErrConfig,
		"Unknown log level '"+name+"'",
		"Use one of: "+strings.Join(Levels, ", "))
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a logger appending to path, creating parent directories as
// needed. An empty path yields a discarding logger. The closer must be called
// once logging is finished.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create the log directory",
			"Check permissions, or point --log-file somewhere writable")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file "+path,
			"Check permissions, or point --log-file somewhere writable")
	}

	return New(f, level), f, nil
}
