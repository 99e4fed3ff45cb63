package dashboard

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CtrlAltSam/NecoMind/internal/sysinfo"
)

// Loop owns the refresh timer and the current usage snapshot.
type Loop struct {
	input    Input
	renderer Renderer
	source   sysinfo.Source
	logger   *log.Logger
	now      func() time.Time
	opts     Options

	stats       string
	usage       sysinfo.Usage
	lastRefresh time.Time
	refreshed   bool
}

// LoopConfig holds a Loop's collaborators. Logger and Now are optional.
type LoopConfig struct {
	Input    Input
	Renderer Renderer
	Source   sysinfo.Source
	Logger   *log.Logger
	Now      func() time.Time
	Stats    string
	Options  Options
}

// NewLoop creates a loop that has not refreshed yet; its first iteration
// always takes a reading.
func NewLoop(cfg LoopConfig) *Loop {
	l := &Loop{
		input:    cfg.Input,
		renderer: cfg.Renderer,
		source:   cfg.Source,
		logger:   cfg.Logger,
		now:      cfg.Now,
		opts:     cfg.Options.withDefaults(),
		stats:    cfg.Stats,
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l
}

// Run iterates until the quit key, a cancelled context, or a poll or render
// error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		done, err := l.Step(ctx)
		if err != nil || done {
			return err
		}
	}
}

// Step runs a single iteration and reports whether the loop should stop.
func (l *Loop) Step(ctx context.Context) (bool, error) {
	if ctx.Err() != nil {
		l.logger.Debug("context cancelled, leaving dashboard")
		return true, nil
	}

	ev, ok, err := l.input.Poll(l.opts.PollTimeout)
	if err != nil {
		return true, err
	}
	if ok && ev.IsKey(KeyQuit) {
		return true, nil
	}

	now := l.now()
	if !l.refreshed || now.Sub(l.lastRefresh) >= l.opts.TickInterval {
		l.refresh()
		l.lastRefresh = now
		l.refreshed = true
	}

	if err := l.renderer.Render(NewFrame(l.stats, l.usage)); err != nil {
		return true, err
	}
	return false, nil
}

// Usage returns the snapshot the next frame will be built from.
func (l *Loop) Usage() sysinfo.Usage {
	return l.usage
}

func (l *Loop) refresh() {
	cpuErr := l.source.RefreshCPU()
	if cpuErr != nil {
		l.logger.Warn("cpu refresh failed, keeping previous reading", "err", cpuErr)
	}
	memErr := l.source.RefreshMemory()
	if memErr != nil {
		l.logger.Warn("memory refresh failed, keeping previous reading", "err", memErr)
	}

	next := sysinfo.Snapshot(l.source)
	if cpuErr != nil {
		next.CPUPercent = l.usage.CPUPercent
	}
	if memErr != nil {
		next.MemUsed, next.MemTotal = l.usage.MemUsed, l.usage.MemTotal
		next.SwapUsed, next.SwapTotal = l.usage.SwapUsed, l.usage.SwapTotal
	}
	l.usage = next

	l.logger.Debug("refreshed",
		"cpu", l.usage.CPUGauge(),
		"mem", l.usage.MemoryPercent(),
		"swap", l.usage.SwapPercent())
}
