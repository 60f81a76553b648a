package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecobuddy/ecobuddy/internal/engine"
)

// Shared color palette.
var (
	ColorTitle     = lipgloss.Color("83")  // green
	ColorAccent    = lipgloss.Color("45")  // cyan
	ColorMuted     = lipgloss.Color("240") // gray
	ColorLow       = lipgloss.Color("40")
	ColorModerate  = lipgloss.Color("220")
	ColorHigh      = lipgloss.Color("208")
	ColorVeryHigh  = lipgloss.Color("196")
	ColorBarFilled = lipgloss.Color("83")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorTitle).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	selectedStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	helpStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	barStyle      = lipgloss.NewStyle().Foreground(ColorBarFilled)
)

// levelStyle maps an impact level label to its display style.
func levelStyle(level string) lipgloss.Style {
	switch level {
	case engine.LevelLow:
		return lipgloss.NewStyle().Foreground(ColorLow).Bold(true)
	case engine.LevelModerate:
		return lipgloss.NewStyle().Foreground(ColorModerate).Bold(true)
	case engine.LevelHigh:
		return lipgloss.NewStyle().Foreground(ColorHigh).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorVeryHigh).Bold(true)
	}
}

// progressBar renders completion of step out of total within the terminal
// width, capped so narrow terminals still get a usable bar.
func progressBar(step, total, width int) string {
	barWidth := width - 10
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 8 {
		barWidth = 8
	}

	filled := barWidth * step / total
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		subtleStyle.Render(strings.Repeat("░", barWidth-filled))
	return bar
}
