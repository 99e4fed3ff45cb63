package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/CtrlAltSam/NecoMind/internal/ui"
)

// Layout constants
const (
	// NarrowWidth is the width below which the banner column is dropped.
	NarrowWidth = 80

	infoRows    = 9
	gaugeRows   = 3
	paletteRows = 3
	swatch      = "████"
)

// View turns a Frame into text sized to the terminal.
type View struct {
	Banner  string
	Profile termenv.Profile
}

// NewView returns a view with the default banner and the color profile
// lipgloss detected (or was forced to).
func NewView() View {
	return View{
		Banner:  Banner,
		Profile: lipgloss.ColorProfile(),
	}
}

// Render lays out the frame within width x height cells. The result never has
// more than height lines, and no line is wider than width.
func (v View) Render(f Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var out string
	if width < NarrowWidth {
		out = v.rightColumn(f, width)
	} else {
		leftWidth := width / 2
		left := Panel(Title, "q quit", bannerLines(v.Banner), leftWidth, height)
		right := v.rightColumn(f, width-leftWidth)
		out = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(out)
}

func (v View) rightColumn(f Frame, width int) string {
	var stats []string
	if f.Stats != "" {
		for _, line := range strings.Split(f.Stats, "\n") {
			stats = append(stats, statsStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		Panel("Info", "", stats, width, infoRows),
		v.gauge("CPU Usage", f.CPU, fmt.Sprintf("%d%%", f.CPU), width),
		v.gauge("Memory Usage", f.Memory, usageLabel(f.Memory, f.MemUsed, f.MemTotal), width),
		v.gauge("Swap Usage", f.Swap, usageLabel(f.Swap, f.SwapUsed, f.SwapTotal), width),
		paletteStrip(width),
	)
}

// gauge renders a 3-row panel holding a bar colored by MetricColor.
func (v View) gauge(title string, percent int, label string, width int) string {
	barWidth := width - 4
	if barWidth < 1 {
		barWidth = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(MetricColor(percent))),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
		progress.WithColorProfile(v.Profile),
	)
	bar.Full = '█'
	bar.Empty = '░'

	return Panel(title, label, []string{bar.ViewAs(float64(percent) / 100)}, width, gaugeRows)
}

func paletteStrip(width int) string {
	swatches := make([]string, 0, len(ui.Palette))
	for _, c := range ui.Palette {
		swatches = append(swatches, lipgloss.NewStyle().Foreground(c).Render(swatch))
	}
	strip := lipgloss.PlaceHorizontal(width-4, lipgloss.Center, strings.Join(swatches, ""))
	return Panel("Palette", "", []string{strip}, width, paletteRows)
}

// usageLabel renders "50% · 8.0 GB / 16 GB", or just the percentage when
// there is nothing to measure.
func usageLabel(percent int, used, total uint64) string {
	if total == 0 {
		return fmt.Sprintf("%d%%", percent)
	}
	return fmt.Sprintf("%d%% · %s / %s", percent, humanize.Bytes(used), humanize.Bytes(total))
}
