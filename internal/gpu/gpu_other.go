//go:build !linux && !darwin && !windows

package gpu

import (
	"time"

	"github.com/charmbracelet/log"
)

func platformQueries() []Query { return nil }

// No known query on this platform: the resolver returns NotFound immediately.
func platformResolver(timeout time.Duration, logger *log.Logger) Resolver {
	r := NewCommandResolver(timeout)
	r.Logger = logger
	return r
}
