package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for metrics - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary = lipgloss.Color("#FFFFFF")
	ColorTextMuted   = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
	ColorValue  = lipgloss.Color("#00FFFF") // Neon cyan
	ColorBanner = lipgloss.Color("#B4B4D0") // Lavender gray
)

// Thresholds for gauge colors
const (
	WarningThreshold  = 70
	CriticalThreshold = 90
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(ColorBanner)
	statsStyle  = lipgloss.NewStyle().Foreground(ColorTextPrimary)
)

// MetricColor returns the gauge color for a percentage:
// green below 70, amber from 70, red from 90.
func MetricColor(percent int) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// SectionHeader renders the top border of a panel with the title on the left
// and an optional value on the right.
// Format: ╭─ Title ──────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1
	if value != "" {
		rightWidth = 1 + lipgloss.Width(value) + 2
	}

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}
	middle := strings.Repeat("─", fillWidth)

	if value == "" {
		return borderStyle.Render("╭─ ") +
			titleStyle.Render(title) +
			borderStyle.Render(" "+middle+"╮")
	}
	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a panel.
// Format: ╰────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine renders one panel row, padded to width.
// Format: │ content                                          │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	padding := width - 4 - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}

// Panel renders a bordered box exactly height rows tall. Lines beyond the
// available rows are dropped and each line is clipped to the inner width.
func Panel(title, value string, lines []string, width, height int) string {
	if height < 2 {
		height = 2
	}
	if width < 10 {
		width = 10
	}

	clip := lipgloss.NewStyle().MaxWidth(width - 4)

	rows := make([]string, 0, height)
	rows = append(rows, SectionHeader(title, value, width))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(lines) {
			line = clip.Render(lines[i])
		}
		rows = append(rows, SectionContentLine(line, width))
	}
	rows = append(rows, SectionFooter(width))

	return strings.Join(rows, "\n")
}
