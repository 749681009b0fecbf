package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted   = lipgloss.Color("241")
	colorPrice   = lipgloss.Color("#ff3300")
	colorSuccess = lipgloss.Color("#2e8b57")
	colorAccent  = lipgloss.Color("#5f5fd7")

	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	itemNameStyle = lipgloss.NewStyle().Bold(true)
	priceStyle    = lipgloss.NewStyle().Foreground(colorPrice)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	completeStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	totalStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	buttonStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Bold(true)

	itemStyle       = lipgloss.NewStyle().PaddingLeft(2)
	activeItemStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorAccent).
			PaddingLeft(1)
	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
