package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true)

	toggleButtonStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	toggleButtonFocusedStyle = toggleButtonStyle.Border(lipgloss.ThickBorder()).Bold(true)
)
