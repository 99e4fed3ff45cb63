package dashboard

import (
	"time"

	"github.com/CtrlAltSam/NecoMind/internal/sysinfo"
	"github.com/CtrlAltSam/NecoMind/internal/terminal"
)

// KeyQuit ends the dashboard.
const KeyQuit = 'q'

// Defaults for Options fields left at zero.
const (
	DefaultTickInterval = time.Second
	DefaultPollTimeout  = 50 * time.Millisecond
)

// Terminal is the full-screen guard. Leave must be safe to call after a
// failed or partial Enter.
type Terminal interface {
	Enter() error
	Leave() error
	Size() (cols, rows int, err error)
}

// Input returns at most one event per call, waiting no longer than timeout.
type Input interface {
	Poll(timeout time.Duration) (terminal.Event, bool, error)
}

// Renderer draws one frame.
type Renderer interface {
	Render(f Frame) error
}

// Frame is everything a Renderer needs for one draw.
type Frame struct {
	Stats string

	CPU    int
	Memory int
	Swap   int

	MemUsed   uint64
	MemTotal  uint64
	SwapUsed  uint64
	SwapTotal uint64
}

// NewFrame combines the formatted stats block with a usage reading.
func NewFrame(stats string, u sysinfo.Usage) Frame {
	return Frame{
		Stats:     stats,
		CPU:       u.CPUGauge(),
		Memory:    u.MemoryPercent(),
		Swap:      u.SwapPercent(),
		MemUsed:   u.MemUsed,
		MemTotal:  u.MemTotal,
		SwapUsed:  u.SwapUsed,
		SwapTotal: u.SwapTotal,
	}
}

// Options tunes loop timing.
type Options struct {
	TickInterval time.Duration
	PollTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.PollTimeout <= 0 {
		o.PollTimeout = DefaultPollTimeout
	}
	return o
}
