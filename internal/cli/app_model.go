package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/nav"
	"github.com/alexanderramin/timetable/internal/notify"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the sidebar layout, the mounted page, and the toast slot.
type appModel struct {
	state    *SharedState
	page     View
	quitting bool

	// Most recent notification, shown until the next key or its timeout.
	toast    *notify.Notification
	toastSeq int
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state: state,
		page:  newPage(state, state.Sidebar.Current()),
	}
}

// newPage mounts a fresh page for path. Pages are rebuilt on every
// navigation, so whatever state they held is dropped with them.
func newPage(state *SharedState, path string) View {
	switch path {
	case nav.PathCourses:
		return newCoursesView(state)
	case nav.PathSettings:
		return newSettingsView(state)
	default:
		return newDashboardView(state)
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m, toastCmd := m.collectToasts()
	return m, tea.Batch(cmd, toastCmd)
}

func (m appModel) update(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		if err := m.state.Sidebar.Navigate(msg.path); err != nil {
			return m, nil
		}
		m.page = newPage(m.state, msg.path)
		return m, m.page.Init()

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}

	return m.forward(msg)
}

// forward hands msg to the mounted page.
func (m appModel) forward(msg tea.Msg) (appModel, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}
	updated, cmd := m.page.Update(msg)
	m.page = updated.(View)
	return m, cmd
}

// collectToasts moves pending notifications into the toast slot and
// schedules the newest one's expiry.
func (m appModel) collectToasts() (appModel, tea.Cmd) {
	pending := m.state.Toasts.Drain()
	if len(pending) == 0 {
		return m, nil
	}
	latest := pending[len(pending)-1]
	m.toast = &latest
	m.toastSeq++
	return m, expireToast(m.toastSeq, m.state.ToastDuration)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key dismisses the current toast.
	m.toast = nil

	// A page with an open dialog or search box receives every key.
	if m.page != nil && m.page.CapturesInput() {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Dashboard):
		return m, navigate(nav.PathDashboard)
	case key.Matches(msg, globalKeys.Courses):
		return m, navigate(nav.PathCourses)
	case key.Matches(msg, globalKeys.Settings):
		return m, navigate(nav.PathSettings)

	case key.Matches(msg, globalKeys.NextPage):
		return m, navigate(peekNext(m.state.Sidebar, 1))
	case key.Matches(msg, globalKeys.PrevPage):
		return m, navigate(peekNext(m.state.Sidebar, -1))

	case key.Matches(msg, globalKeys.Collapse):
		m.state.Sidebar.ToggleCollapsed()
		return m.forward(tea.WindowSizeMsg{Width: m.state.Width, Height: m.state.Height})
	}

	return m.forward(msg)
}

// peekNext returns the path delta steps away from the current one without
// moving the sidebar; the move happens when navigateMsg arrives.
func peekNext(s *nav.Sidebar, delta int) string {
	probe := nav.NewSidebar()
	_ = probe.Navigate(s.Current())
	if delta > 0 {
		probe.Next()
	} else {
		probe.Prev()
	}
	return probe.Current()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	body := ""
	if m.page != nil {
		body = m.page.View()
	}
	if m.toast != nil {
		body = formatter.FormatToast(*m.toast) + "\n\n" + body
	}
	content := lipgloss.NewStyle().PaddingLeft(2).Width(m.state.ContentWidth()).Render(body)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(m.state.Sidebar, m.state.ContentHeight()), content))

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("timetable")
	if m.page != nil {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(m.page.Title())
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.page != nil {
		for _, b := range m.page.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if m.page == nil || !m.page.CapturesInput() {
		for _, b := range globalKeys.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
