// Package help implements the key reference overlay pushed with "?".
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

type section struct {
	title string
	keys  []layout.KeyHint
}

var sections = []section{
	{"Navigation", []layout.KeyHint{
		{Key: "↑↓ / j k", Description: "Move in the sidebar"},
		{Key: "Enter", Description: "Open the selected mode"},
		{Key: "Esc", Description: "Back to the sidebar"},
		{Key: "q", Description: "Quit (from the sidebar)"},
		{Key: "Ctrl+C", Description: "Quit"},
	}},
	{"Forms", []layout.KeyHint{
		{Key: "Tab / Shift+Tab", Description: "Next / previous field"},
		{Key: "Enter", Description: "Run the action"},
		{Key: "Ctrl+E", Description: "Explain the result"},
	}},
	{"Practice", []layout.KeyHint{
		{Key: "←→", Description: "Change difficulty"},
		{Key: "Ctrl+N", Description: "Next problem"},
	}},
	{"Knowledge", []layout.KeyHint{
		{Key: "Enter", Description: "Search"},
		{Key: "Ctrl+N / Ctrl+P", Description: "Next / previous match"},
		{Key: "PgUp / PgDn", Description: "Scroll"},
	}},
	{"Expressions", []layout.KeyHint{
		{Key: "+ - * /", Description: "Arithmetic"},
		{Key: "** or ^", Description: "Power"},
		{Key: "sin cos exp log", Description: "Functions"},
		{Key: "pi  E", Description: "Constants"},
	}},
}

// HelpScreen lists the key bindings and the expression syntax.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Close help"}}
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(18)

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Subtitle.Render(s.title))
		b.WriteString("\n")
		for _, k := range s.keys {
			b.WriteString("  " + keyStyle.Render(k.Key) + theme.Body.Render(k.Description) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		MaxHeight(height).
		Render(b.String())
}

func (h *HelpScreen) Title() string {
	return "Help"
}
