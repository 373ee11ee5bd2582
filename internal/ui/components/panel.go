package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/ui/theme"
)

// PanelWidth returns the width of a side panel for a content area, or 0
// when the area is too narrow to show one.
func PanelWidth(contentWidth int) int {
	w := contentWidth / 3
	if w > 36 {
		w = 36
	}
	if w < 22 {
		return 0
	}
	return w
}

// Panel wraps content in a rounded-border card with a title line.
func Panel(title, content string, width int) string {
	body := theme.Subtitle.Render(title) + "\n\n" + content
	return theme.Card.
		Width(width).
		Render(body)
}

// Frame centers content in a double-border frame filling width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Columns places main and, when it fits, a side panel to its right.
func Columns(main, side string, width int) string {
	if side == "" {
		return main
	}
	left := lipgloss.NewStyle().Width(width - lipgloss.Width(side) - 2).Render(main)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", side)
}
