package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/nav"
)

// renderSidebar draws the navigation panel. Collapsed, it shows icons only.
func renderSidebar(s *nav.Sidebar, height int) string {
	var lines []string
	if !s.Collapsed() {
		lines = append(lines, formatter.StyleHeader.Render("Timetable"), "", formatter.Dim("Navigation"))
	} else {
		lines = append(lines, "", "", "")
	}

	for _, it := range s.Items() {
		label := it.Icon
		if !s.Collapsed() {
			label += " " + it.Title
		}
		if it.Active {
			lines = append(lines, formatter.StyleHeader.Render("▌"+label))
			continue
		}
		lines = append(lines, formatter.Dim(" "+label))
	}

	style := lipgloss.NewStyle().
		Width(s.Width()).
		Height(max(height, len(lines))).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(formatter.ColorDim)
	return style.Render(strings.Join(lines, "\n"))
}
