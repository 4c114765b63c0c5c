package formatter

import (
	"strings"

	"github.com/alexanderramin/timetable/internal/nav"
)

// FormatRoutes renders the navigation destinations, marking the active one.
func FormatRoutes(items []nav.Item) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		marker := ""
		if it.Active {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{marker, it.Title, it.Path})
	}
	return strings.TrimRight(RenderTable([]string{"", "TITLE", "PATH"}, rows), "\n")
}
