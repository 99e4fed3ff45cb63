package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/CtrlAltSam/NecoMind/internal/config"
	"github.com/CtrlAltSam/NecoMind/internal/errors"
	"github.com/CtrlAltSam/NecoMind/internal/ui"
)

// Global flags
var (
	cfgFile        string
	noColor        bool
	logLevelFlag   string
	logFileFlag    string
	intervalFlag   time.Duration
	pollFlag       time.Duration
	gpuTimeoutFlag time.Duration
)

// cfg is the merged configuration, loaded before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "necomind",
	Short: "Live terminal dashboard for CPU, memory and swap",
	Long: `NecoMind shows what your machine is up to: OS, host, kernel, uptime,
CPU and GPU names, plus live CPU, memory and swap gauges.

Press q to quit.

Examples:
  necomind
  necomind --interval 2s
  necomind info --json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context(), cfg)
	},
}

func init() {
	d := config.DefaultConfig()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.config/necomind/config.yaml)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&logLevelFlag, "log-level", d.Log.Level, "log level: debug, info, warn, error")
	pf.StringVar(&logFileFlag, "log-file", d.Log.File, "write logs here while the dashboard is running")
	pf.DurationVar(&intervalFlag, "interval", d.Interval, "how often to re-sample CPU and memory")
	pf.DurationVar(&pollFlag, "poll", d.Poll, "how long each wait for a key press may block")
	pf.DurationVar(&gpuTimeoutFlag, "gpu-timeout", d.GPUTimeout, "timeout for each GPU lookup command")
}

// loadConfig merges file, env and flags into cfg and applies color settings.
func loadConfig(cmd *cobra.Command, args []string) error {
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		machineMode = true
	}

	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}

	loaded, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	cfg = loaded

	if !cfg.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(reportError(os.Stdout, os.Stderr, err))
	}
}

// reportError prints err and returns the process exit code for it.
// An ExitError means the message was already shown, so only its code is used.
// In machine mode the error goes to stdout as a JSON envelope.
func reportError(stdout, w io.Writer, err error) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	if MachineMode() {
		_ = WriteJSONFromError(stdout, err)
		return 1
	}

	switch {
	case isUnknownCommandError(err):
		msg := err.Error()
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("'%s' isn't a necomind command", name)
		}
		fmt.Fprintf(w, "%s %s\n\n  Run 'necomind --help' to see what's available.\n", ui.SymbolFail, msg)
	case isStructured(err):
		fmt.Fprint(w, err.Error())
	default:
		fmt.Fprintf(w, "%s %s\n", ui.SymbolFail, err.Error())
	}
	return 1
}

// isStructured reports whether err carries its own formatted message.
func isStructured(err error) bool {
	var e *errors.Error
	return stderrors.As(err, &e)
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "necomind"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
