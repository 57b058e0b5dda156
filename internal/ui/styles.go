package ui

import "github.com/charmbracelet/lipgloss"

// Blue theme, matching the decorative header / dimmed-completed look of
// the shell.
var (
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	doneStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("240"))

	placeholderStyle = lipgloss.NewStyle().
				Faint(true).
				Foreground(lipgloss.Color("44"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("44"))

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("117"))

	helpCmdStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("44"))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	farewellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))
)
