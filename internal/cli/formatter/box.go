package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RenderCard renders a dashboard stat card: title, big value, caption.
func RenderCard(title, value, caption string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2).
		Width(width)
	return style.Render(Bold(title) + "\n" + StyleHeader.Render(value) + "\n" + Dim(caption))
}

// PageHeading renders a page title with its tagline underneath.
func PageHeading(title, tagline string) string {
	return StyleHeader.Render(title) + "\n" + Dim(tagline)
}
