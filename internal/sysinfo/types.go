// Package sysinfo samples the local host: a dynamic Usage snapshot that is
// refreshed on a tick, and a static Identity captured once at startup.
package sysinfo

import (
	"math"
	"time"
)

// Unknown is substituted for any identity fact that couldn't be looked up.
const Unknown = "Unknown"

// Identity is the static snapshot shown in the stats panel.
// Every string field is non-empty once built by CaptureIdentity.
type Identity struct {
	OS      string        `json:"os" yaml:"os"`
	Host    string        `json:"host" yaml:"host"`
	Kernel  string        `json:"kernel" yaml:"kernel"`
	Uptime  time.Duration `json:"uptime" yaml:"uptime"`
	CPU     string        `json:"cpu" yaml:"cpu"`
	GPU     string        `json:"gpu" yaml:"gpu"`
	Columns int           `json:"columns" yaml:"columns"`
	Rows    int           `json:"rows" yaml:"rows"`
}

// Usage is a point-in-time read of CPU, memory and swap.
type Usage struct {
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemUsed    uint64  `json:"mem_used" yaml:"mem_used"`
	MemTotal   uint64  `json:"mem_total" yaml:"mem_total"`
	SwapUsed   uint64  `json:"swap_used" yaml:"swap_used"`
	SwapTotal  uint64  `json:"swap_total" yaml:"swap_total"`
}

// MemoryPercent returns memory use as a gauge percentage.
func (u Usage) MemoryPercent() int {
	return Percent(u.MemUsed, u.MemTotal)
}

// SwapPercent returns swap use as a gauge percentage. Hosts without swap report 0.
func (u Usage) SwapPercent() int {
	return Percent(u.SwapUsed, u.SwapTotal)
}

// CPUGauge returns the CPU percentage truncated for gauge display.
func (u Usage) CPUGauge() int {
	return CPUGauge(u.CPUPercent)
}

// Percent returns round(used/total*100) clamped to [0, 100].
// A zero total yields 0.
func Percent(used, total uint64) int {
	if total == 0 {
		return 0
	}
	return clampPercent(math.Round(float64(used) / float64(total) * 100))
}

// CPUGauge truncates an already-percentage CPU reading and clamps it to [0, 100].
func CPUGauge(percent float64) int {
	return clampPercent(math.Trunc(percent))
}

func clampPercent(p float64) int {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return int(p)
	}
}
