package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runProgram runs the full-screen terminal UI until the user quits.
func runProgram(app *App) error {
	m := newAppModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
