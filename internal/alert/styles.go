package alert

import "github.com/charmbracelet/lipgloss"

const (
	colorBlue  = lipgloss.Color("27")
	colorWhite = lipgloss.Color("15")
	colorGray  = lipgloss.Color("245")
	colorDark  = lipgloss.Color("240")
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(1, 2)
	messageStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)

	buttonBaseStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 3)
	confirmButtonStyle = buttonBaseStyle.
				Foreground(colorWhite).
				Background(colorBlue).
				BorderForeground(colorBlue)
	dismissButtonStyle = buttonBaseStyle.
				Foreground(colorGray).
				BorderForeground(colorDark)

	closeStyle = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle   = lipgloss.NewStyle().Faint(true).Foreground(colorDark)
)

func focused(s lipgloss.Style) lipgloss.Style {
	return s.Border(lipgloss.ThickBorder()).Bold(true)
}
