//go:build windows

package gpu

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yusufpapurcu/wmi"
)

func platformQueries() []Query {
	return []Query{
		{
			Name: "powershell",
			Args: []string{
				"-NoProfile",
				"-Command",
				"Get-CimInstance Win32_VideoController | Select-Object -ExpandProperty Name",
			},
		},
	}
}

// WMI first, PowerShell when COM/WMI is unavailable (e.g. some sandboxes).
func platformResolver(timeout time.Duration, logger *log.Logger) Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cmd := NewCommandResolver(timeout, platformQueries()...)
	cmd.Logger = logger
	return Chain{&wmiResolver{timeout: timeout, logger: logger}, cmd}
}

// The type name doubles as the WMI class name in CreateQuery.
type win32_VideoController struct {
	Name string
}

type wmiResolver struct {
	timeout time.Duration
	logger  *log.Logger
}

func (r *wmiResolver) Resolve(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := make(chan string, 1)
	go func() {
		var controllers []win32_VideoController
		if err := wmi.Query(wmi.CreateQuery(&controllers, ""), &controllers); err != nil {
			if r.logger != nil {
				r.logger.Debug("wmi video controller query failed", "err", err)
			}
			result <- ""
			return
		}
		for _, c := range controllers {
			if name := strings.TrimSpace(c.Name); name != "" {
				result <- name
				return
			}
		}
		result <- ""
	}()

	select {
	case <-ctx.Done():
		return NotFound
	case name := <-result:
		if name == "" {
			return NotFound
		}
		return name
	}
}
