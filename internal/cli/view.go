package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each page of the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewCourses
	ViewSettings
)

// View is the interface that all TUI pages must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // header segment for this page

	// CapturesInput reports whether the page currently owns every key
	// (an open dialog or search box), bypassing global keybindings.
	CapturesInput() bool
}
