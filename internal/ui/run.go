package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"neuroquest/internal/app"
)

// Run drives the full-screen TUI until the player quits.
func Run(a *app.App) error {
	program := tea.NewProgram(NewRoot(a), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
