package cli

import (
	"context"
	"os"

	"github.com/CtrlAltSam/NecoMind/internal/config"
	"github.com/CtrlAltSam/NecoMind/internal/dashboard"
	"github.com/CtrlAltSam/NecoMind/internal/gpu"
	"github.com/CtrlAltSam/NecoMind/internal/logging"
	"github.com/CtrlAltSam/NecoMind/internal/sysinfo"
	"github.com/CtrlAltSam/NecoMind/internal/terminal"
)

// dashboardCommand runs the full-screen dashboard on stdin/stdout until q is
// pressed or ctx is cancelled.
func dashboardCommand(ctx context.Context, cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	session := terminal.NewSession(os.Stdin, os.Stdout)
	source := sysinfo.NewHostSource(ctx)

	return dashboard.Run(ctx, dashboard.Deps{
		Terminal: session,
		Input:    session,
		Renderer: dashboard.NewScreenRenderer(session.Screen(), dashboard.NewView()),
		Source:   source,
		Identity: source,
		GPU:      gpu.Default(cfg.GPUTimeout, logger),
		Logger:   logger,
	}, dashboard.Options{
		TickInterval: cfg.Interval,
		PollTimeout:  cfg.Poll,
	})
}
