package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/timetable/internal/notify"
	"github.com/alexanderramin/timetable/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (sidebar, mounted page, toast) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// testApp returns an App with default settings and logging disabled.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{}
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Refresh sends a resize with the current size so the app model runs a
// full update cycle, e.g. after a test calls a page method directly.
func (d *TestDriver) Refresh() {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the mounted page.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().page.ID()
}

// CurrentPath returns the sidebar's current location.
func (d *TestDriver) CurrentPath() string {
	return d.appModel().state.Sidebar.Current()
}

// SidebarCollapsed reports whether the sidebar shows icons only.
func (d *TestDriver) SidebarCollapsed() bool {
	return d.appModel().state.Sidebar.Collapsed()
}

// Toast returns the notification on screen, or nil.
func (d *TestDriver) Toast() *notify.Notification {
	return d.appModel().toast
}

// IsQuitting reports whether the app has requested to quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// CoursesView returns the mounted courses page. It fails the test if a
// different page is mounted.
func (d *TestDriver) CoursesView() *coursesView {
	d.T.Helper()
	v, ok := d.appModel().page.(*coursesView)
	if !ok {
		d.T.Fatalf("mounted page is %T, want *coursesView", d.appModel().page)
	}
	return v
}

// SettingsView returns the mounted settings page.
func (d *TestDriver) SettingsView() *settingsView {
	d.T.Helper()
	v, ok := d.appModel().page.(*settingsView)
	if !ok {
		d.T.Fatalf("mounted page is %T, want *settingsView", d.appModel().page)
	}
	return v
}
