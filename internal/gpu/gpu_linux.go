//go:build linux

package gpu

import (
	"time"

	"github.com/charmbracelet/log"
)

func platformQueries() []Query {
	return []Query{
		{
			Name:  "nvidia-smi",
			Args:  []string{"--query-gpu=name", "--format=csv,noheader"},
			Parse: ParseNvidiaSMI,
		},
		{
			Name:  "lspci",
			Parse: ParseLspci,
		},
	}
}

func platformResolver(timeout time.Duration, logger *log.Logger) Resolver {
	r := NewCommandResolver(timeout, platformQueries()...)
	r.Logger = logger
	return r
}
