//go:build darwin

package gpu

import (
	"time"

	"github.com/charmbracelet/log"
)

func platformQueries() []Query {
	return []Query{
		{
			Name:  "system_profiler",
			Args:  []string{"SPDisplaysDataType"},
			Parse: ParseSystemProfiler,
		},
	}
}

func platformResolver(timeout time.Duration, logger *log.Logger) Resolver {
	r := NewCommandResolver(timeout, platformQueries()...)
	r.Logger = logger
	return r
}
