package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
)

const (
	dashboardTitle   = "My Timetable"
	dashboardTagline = "Manage your schedule and courses efficiently"
	noActivity       = "No recent activity. Start by adding your first course!"
)

// dashboardCard is one summary tile. The figures are placeholders.
type dashboardCard struct {
	title   string
	value   string
	caption string
}

var dashboardCards = []dashboardCard{
	{title: "Total Courses", value: "0", caption: "No courses added yet"},
	{title: "This Week", value: "0", caption: "Classes scheduled"},
	{title: "Study Hours", value: "0", caption: "Hours this week"},
}

// dashboardView is the static landing page.
type dashboardView struct {
	state *SharedState
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state}
}

func (v *dashboardView) ID() ViewID          { return ViewDashboard }
func (v *dashboardView) Title() string       { return "Dashboard" }
func (v *dashboardView) CapturesInput() bool { return false }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{globalKeys.Courses, globalKeys.Settings}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

func (v *dashboardView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *dashboardView) View() string {
	var b strings.Builder
	b.WriteString(formatter.PageHeading(dashboardTitle, dashboardTagline))
	b.WriteString("\n\n")

	// Each card adds two border cells to its width.
	cardWidth := max((v.state.ContentWidth()-10)/len(dashboardCards), 18)
	cards := make([]string, 0, len(dashboardCards))
	for _, c := range dashboardCards {
		cards = append(cards, formatter.RenderCard(c.title, c.value, c.caption, cardWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderBox("Recent Activity", formatter.Dim(noActivity)))
	return b.String()
}
