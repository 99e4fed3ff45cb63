package dashboard

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CtrlAltSam/NecoMind/internal/gpu"
	"github.com/CtrlAltSam/NecoMind/internal/sysinfo"
)

// Deps wires Run to its collaborators. Logger, GPU and Now may be nil.
type Deps struct {
	Terminal Terminal
	Input    Input
	Renderer Renderer
	Source   sysinfo.Source
	Identity sysinfo.IdentitySource
	GPU      gpu.Resolver
	Logger   *log.Logger
	Now      func() time.Time
}

// Run acquires the terminal, captures the identity once and runs the loop.
// The terminal is released on every way out of Run. A panic is re-raised after
// release; a release failure is joined onto whatever error the loop returned.
func Run(ctx context.Context, d Deps, opts Options) (err error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	defer func() {
		if r := recover(); r != nil {
			if leaveErr := d.Terminal.Leave(); leaveErr != nil {
				logger.Error("terminal restore failed during panic", "err", leaveErr)
			}
			panic(r)
		}
		if leaveErr := d.Terminal.Leave(); leaveErr != nil {
			err = stderrors.Join(err, leaveErr)
		}
	}()

	if err := d.Terminal.Enter(); err != nil {
		return err
	}

	cols, rows, sizeErr := d.Terminal.Size()
	if sizeErr != nil {
		logger.Debug("terminal size unavailable", "err", sizeErr)
		cols, rows = 0, 0
	}

	id := sysinfo.CaptureIdentity(ctx, d.Identity, d.GPU, cols, rows)
	logger.Info("identity captured", "os", id.OS, "host", id.Host, "gpu", id.GPU)

	loop := NewLoop(LoopConfig{
		Input:    d.Input,
		Renderer: d.Renderer,
		Source:   d.Source,
		Logger:   logger,
		Now:      d.Now,
		Stats:    sysinfo.FormatStats(id),
		Options:  opts,
	})
	return loop.Run(ctx)
}
