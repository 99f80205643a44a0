package ui

import "github.com/charmbracelet/lipgloss"

// Badge chrome colours. The background comes from the current breakpoint.
var (
	// BadgeForeground is the badge text colour, readable on every theme colour.
	BadgeForeground = lipgloss.Color("#FFFFFF")

	// CanvasText is used for the hint line in standalone mode.
	CanvasText = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
)

// BadgeStyle creates a styled badge with the given background colour.
// Every badge owns its own style value, so host styles never leak into it.
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(BadgeForeground).
		Background(color).
		Padding(0, 1)
}

// HintStyle is the muted style for the standalone help line.
var HintStyle = lipgloss.NewStyle().Foreground(CanvasText)
