package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the pager needs.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0)
	statusInfoStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	keystringStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	emptyLineStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
)
