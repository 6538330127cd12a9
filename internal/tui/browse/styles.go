package browse

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statusActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	statusCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusPausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	activeDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	inactiveDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
