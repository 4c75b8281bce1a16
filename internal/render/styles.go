package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("86")  // Cyan
	colorSuccess = lipgloss.Color("82")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorDanger  = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("245") // Light gray
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	bestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	changeStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorDanger)
)

// speedupStyle picks a color for a speedup value relative to baseline.
func speedupStyle(speedup float64) lipgloss.Style {
	switch {
	case speedup >= 1.5:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case speedup < 0.8:
		return lipgloss.NewStyle().Foreground(colorDanger)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}
