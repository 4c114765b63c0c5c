package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timetable/internal/notify"
)

// FormatToast renders a notification as a bordered toast.
func FormatToast(n notify.Notification) string {
	color := ColorGreen
	if n.Severity == notify.SeverityDestructive {
		color = ColorRed
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	title := SeverityIndicator(n.Severity) + " " + SeverityColor(n.Severity).Bold(true).Render(n.Title)
	if n.Description == "" {
		return style.Render(title)
	}
	return style.Render(title + "\n" + StyleFg.Render(n.Description))
}

// FormatNotificationLine renders a notification on one line, for plain output.
func FormatNotificationLine(n notify.Notification) string {
	line := SeverityIndicator(n.Severity) + " " + Bold(n.Title)
	if n.Description != "" {
		line += " " + Dim("—") + " " + n.Description
	}
	return line
}
