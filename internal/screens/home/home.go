package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/problembank"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

var features = []struct{ name, text string }{
	{"Calculus", "derivatives and indefinite integrals, solved symbolically"},
	{"Plots", "terminal graphs of any expression over a chosen range"},
	{"Practice", "problems by difficulty with instant answer checking"},
	{"Knowledge", "searchable reference notes"},
}

var quickStart = []string{
	"Pick a mode in the sidebar and press Enter",
	"Type an expression such as x**2 + 3*x + 1",
	"Press Enter to compute and read the result",
	"Plot it to see the shape of the function",
}

// HomeScreen is the landing page.
type HomeScreen struct {
	counts map[problembank.Difficulty]int
	tutor  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. counts summarizes the loaded problem bank;
// tutor names the AI tutor model, or is empty when none is configured.
func New(counts map[problembank.Difficulty]int, tutor string) *HomeScreen {
	return &HomeScreen{counts: counts, tutor: tutor}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(RenderBanner(width))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("an interactive tutor for elementary calculus"))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Features"))
	b.WriteString("\n")
	for _, f := range features {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  • " + f.name))
		b.WriteString(theme.Body.Render(": " + f.text))
		b.WriteString("\n")
	}

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Quick start"))
		b.WriteString("\n")
		for i, step := range quickStart {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(h.status()))

	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(b.String())
}

func (h *HomeScreen) status() string {
	total := 0
	parts := make([]string, 0, len(problembank.Difficulties))
	for _, d := range problembank.Difficulties {
		total += h.counts[d]
		parts = append(parts, fmt.Sprintf("%d %s", h.counts[d], d))
	}
	bank := "no practice problems loaded, a sample problem is used"
	if total > 0 {
		bank = fmt.Sprintf("%d practice problems (%s)", total, strings.Join(parts, ", "))
	}
	tutor := "AI tutor off"
	if h.tutor != "" {
		tutor = "AI tutor: " + h.tutor
	}
	return bank + "\n" + tutor
}

func (h *HomeScreen) Title() string {
	return "Home"
}
