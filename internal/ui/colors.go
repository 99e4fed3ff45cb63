package ui

import "github.com/charmbracelet/lipgloss"

// Basic ANSI colors, so the output follows the user's terminal theme.
//   1 red, 2 green, 3 yellow, 4 blue, 5 magenta, 6 cyan, 7 white, 8 gray

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
	ColorAccent    lipgloss.Color = "5" // Magenta
)

// Palette is the swatch strip at the bottom of the dashboard, in ANSI order.
var Palette = []lipgloss.Color{
	ColorError,
	ColorSuccess,
	ColorWarning,
	ColorSecondary,
	ColorAccent,
	ColorInfo,
	ColorPrimary,
}
