package cmd

import "github.com/charmbracelet/lipgloss"

// Shared styles for command banners and prompts. Report styling lives in the
// report package's Theme; these cover only the wrapper's own messages.
var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)
