package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Map canvas colors, indexed by cellColor.
var (
	gridStyle      = lipgloss.NewStyle().Foreground(borderCol)
	grayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	whiteStyle     = lipgloss.NewStyle().Foreground(baseFg)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DD3FC"))
)
