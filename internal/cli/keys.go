package cli

import "github.com/charmbracelet/bubbles/key"

// globalKeyMap holds the bindings handled by the app model itself.
type globalKeyMap struct {
	Dashboard key.Binding
	Courses   key.Binding
	Settings  key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Collapse  key.Binding
	Quit      key.Binding
}

var globalKeys = globalKeyMap{
	Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
	Courses:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "courses")),
	Settings:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
	NextPage:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	PrevPage:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
	Collapse:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "collapse")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns the global hints shown after the page's own.
func (k globalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Collapse, k.Quit}
}
