package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/CtrlAltSam/NecoMind/internal/config"
	"github.com/CtrlAltSam/NecoMind/internal/errors"
	"github.com/CtrlAltSam/NecoMind/internal/gpu"
	"github.com/CtrlAltSam/NecoMind/internal/logging"
	"github.com/CtrlAltSam/NecoMind/internal/sysinfo"
	"github.com/CtrlAltSam/NecoMind/internal/ui"
)

// cpuSampleWindow separates the two CPU readings info takes, since a single
// reading has nothing to compare against.
const cpuSampleWindow = 250 * time.Millisecond

var (
	infoJSON bool
	infoYAML bool
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a one-shot snapshot and exit",
	Long: `Print the same facts the dashboard shows, once, without taking over the
terminal. Handy for scripts and bug reports.

Examples:
  necomind info
  necomind info --json
  necomind info --yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := infoFormat(infoJSON, infoYAML)
		if err != nil {
			return err
		}
		return infoCommand(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, format)
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output JSON")
	infoCmd.Flags().BoolVar(&infoYAML, "yaml", false, "output YAML")
	rootCmd.AddCommand(infoCmd)
}

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

func infoFormat(asJSON, asYAML bool) (outputFormat, error) {
	switch {
	case asJSON && asYAML:
		return formatText, errors.New(errors.ErrConfig,
			"--json and --yaml cannot be used together",
			"Pick one output format.")
	case asJSON:
		return formatJSON, nil
	case asYAML:
		return formatYAML, nil
	default:
		return formatText, nil
	}
}

// InfoReport is the machine-readable snapshot written by info.
type InfoReport struct {
	OS            string      `json:"os" yaml:"os"`
	Host          string      `json:"host" yaml:"host"`
	Kernel        string      `json:"kernel" yaml:"kernel"`
	Uptime        string      `json:"uptime" yaml:"uptime"`
	UptimeSeconds int64       `json:"uptime_seconds" yaml:"uptime_seconds"`
	Resolution    string      `json:"resolution" yaml:"resolution"`
	CPU           string      `json:"cpu" yaml:"cpu"`
	GPU           string      `json:"gpu" yaml:"gpu"`
	Usage         UsageReport `json:"usage" yaml:"usage"`
}

// UsageReport holds one usage reading plus the gauge percentages derived from it.
type UsageReport struct {
	CPUPercent    float64 `json:"cpu_percent" yaml:"cpu_percent"`
	CPU           int     `json:"cpu" yaml:"cpu"`
	Memory        int     `json:"memory" yaml:"memory"`
	Swap          int     `json:"swap" yaml:"swap"`
	MemUsedBytes  uint64  `json:"mem_used_bytes" yaml:"mem_used_bytes"`
	MemTotalBytes uint64  `json:"mem_total_bytes" yaml:"mem_total_bytes"`
	SwapUsedBytes uint64  `json:"swap_used_bytes" yaml:"swap_used_bytes"`
	SwapTotal     uint64  `json:"swap_total_bytes" yaml:"swap_total_bytes"`
}

// NewInfoReport flattens an identity and a usage reading.
func NewInfoReport(id sysinfo.Identity, u sysinfo.Usage) InfoReport {
	return InfoReport{
		OS:            id.OS,
		Host:          id.Host,
		Kernel:        id.Kernel,
		Uptime:        sysinfo.FormatUptime(id.Uptime),
		UptimeSeconds: int64(id.Uptime / time.Second),
		Resolution:    id.Resolution(),
		CPU:           id.CPU,
		GPU:           id.GPU,
		Usage: UsageReport{
			CPUPercent:    u.CPUPercent,
			CPU:           u.CPUGauge(),
			Memory:        u.MemoryPercent(),
			Swap:          u.SwapPercent(),
			MemUsedBytes:  u.MemUsed,
			MemTotalBytes: u.MemTotal,
			SwapUsedBytes: u.SwapUsed,
			SwapTotal:     u.SwapTotal,
		},
	}
}

// sampler is what info needs from a metrics source.
type sampler interface {
	sysinfo.Source
	sysinfo.IdentitySource
}

func infoCommand(ctx context.Context, out, errOut io.Writer, cfg *config.Config, format outputFormat) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.New(errOut, level)

	cols, rows := 0, 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			cols, rows = w, h
		}
	}

	source := sysinfo.NewHostSource(ctx)
	report := collectInfo(ctx, source, gpu.Default(cfg.GPUTimeout, logger), logger, cols, rows, cpuSampleWindow)
	return writeInfo(out, report, format)
}

// collectInfo captures the identity and one usage reading. CPU is sampled
// twice, window apart. Refresh failures are logged and leave zeros behind.
func collectInfo(ctx context.Context, src sampler, resolver gpu.Resolver, logger *log.Logger, cols, rows int, window time.Duration) InfoReport {
	if err := src.RefreshCPU(); err != nil {
		logger.Warn("cpu sample failed", "err", err)
	}

	id := sysinfo.CaptureIdentity(ctx, src, resolver, cols, rows)

	select {
	case <-ctx.Done():
	case <-time.After(window):
	}

	if err := src.RefreshCPU(); err != nil {
		logger.Warn("cpu sample failed", "err", err)
	}
	if err := src.RefreshMemory(); err != nil {
		logger.Warn("memory sample failed", "err", err)
	}

	return NewInfoReport(id, sysinfo.Snapshot(src))
}

func writeInfo(w io.Writer, r InfoReport, format outputFormat) error {
	switch format {
	case formatJSON:
		return WriteJSONSuccess(w, r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Couldn't write YAML output", "")
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderInfoText(r))
		return err
	}
}

func renderInfoText(r InfoReport) string {
	title := lipgloss.NewStyle().Foreground(ui.ColorAccent).Bold(true).Render("NecoMind")
	subtitle := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(" · " + r.Host)

	table := ui.RenderKeyValues("Field", "Value", [][2]string{
		{"OS", r.OS},
		{"Host", r.Host},
		{"Kernel", r.Kernel},
		{"Uptime", r.Uptime},
		{"Resolution", r.Resolution},
		{"CPU", r.CPU},
		{"GPU", r.GPU},
		{"CPU Usage", fmt.Sprintf("%d%%", r.Usage.CPU)},
		{"Memory Usage", usageText(r.Usage.Memory, r.Usage.MemUsedBytes, r.Usage.MemTotalBytes)},
		{"Swap Usage", usageText(r.Usage.Swap, r.Usage.SwapUsedBytes, r.Usage.SwapTotal)},
	})

	return title + subtitle + "\n\n" + table
}

func usageText(percent int, used, total uint64) string {
	if total == 0 {
		return fmt.Sprintf("%d%%", percent)
	}
	return fmt.Sprintf("%d%% (%s / %s)", percent, humanize.Bytes(used), humanize.Bytes(total))
}
