package sysinfo

import (
	"fmt"
	"time"
)

// FormatStats renders the identity as the stats panel text. The field order
// is fixed and the output depends only on id.
func FormatStats(id Identity) string {
	return fmt.Sprintf(
		"OS: %s\nHost: %s\nKernel: %s\nUptime: %s\nResolution: %s\nCPU: %s\nGPU: %s",
		id.OS, id.Host, id.Kernel, FormatUptime(id.Uptime), id.Resolution(), id.CPU, id.GPU,
	)
}

// FormatUptime renders whole hours and leftover minutes, e.g. "27 hours, 4 minutes".
func FormatUptime(d time.Duration) string {
	hours, minutes := splitUptime(d)
	return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
}

// Resolution renders the terminal size as columns x rows.
func (id Identity) Resolution() string {
	return fmt.Sprintf("%dx%d", id.Columns, id.Rows)
}

func splitUptime(d time.Duration) (hours, minutes int64) {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return secs / 3600, (secs % 3600) / 60
}
