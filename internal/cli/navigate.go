package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages used by pages to request app-level changes.
// The appModel handles these in its Update method.

// navigateMsg moves the sidebar to path and mounts that page.
type navigateMsg struct {
	path string
}

// toastExpiredMsg dismisses the toast with the given sequence number if it
// is still the one on screen.
type toastExpiredMsg struct {
	seq int
}

// navigate returns a tea.Cmd that switches to the page at path.
func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// expireToast returns a tea.Cmd that fires toastExpiredMsg after d.
func expireToast(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}
