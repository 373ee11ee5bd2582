// Package plot implements the Plot mode.
package plot

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/ui/components"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

const (
	inputExpr = iota
	inputVar
	inputMin
	inputMax
)

var examples = []struct{ group, exprs string }{
	{"Polynomial", "x**2 - 4*x + 4"},
	{"Trigonometric", "sin(x), cos(2*x)"},
	{"Exponential", "exp(x), 2**x"},
	{"Logarithmic", "log(x)"},
}

// PlotScreen draws an expression over a range as a terminal chart.
type PlotScreen struct {
	assistant *assistant.Assistant
	form      components.Form
	figure    *assistant.Figure
	errMsg    string
}

var _ screen.Screen = (*PlotScreen)(nil)

// New creates a PlotScreen with the default function sin(x) on [-10, 10].
func New(a *assistant.Assistant) *PlotScreen {
	return &PlotScreen{
		assistant: a,
		form: components.NewForm(
			[]components.TextInput{
				components.NewTextInput("f(x) =", "sin(x)", false, 256),
				components.NewTextInput("Variable", assistant.DefaultVariable, false, 32),
				components.NewTextInput("x min", "-10", true, 24),
				components.NewTextInput("x max", "10", true, 24),
			},
			[]components.Button{components.NewButton("Draw")},
		),
	}
}

func (p *PlotScreen) Init() tea.Cmd {
	return nil
}

func (p *PlotScreen) Title() string {
	return "Plot"
}

func (p *PlotScreen) Focus() tea.Cmd {
	return p.form.Focus()
}

func (p *PlotScreen) Blur() {
	p.form.Blur()
}

func (p *PlotScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Draw"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (p *PlotScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var (
		cmd     tea.Cmd
		pressed int
	)
	p.form, cmd, pressed = p.form.Update(msg)
	if pressed == 0 {
		p.draw()
	}
	return p, cmd
}

func (p *PlotScreen) draw() {
	p.figure, p.errMsg = nil, ""

	lo, err := p.form.Inputs[inputMin].FloatValue()
	if err != nil {
		p.errMsg = fmt.Sprintf("error: x min %q is not a number", p.form.Value(inputMin))
		return
	}
	hi, err := p.form.Inputs[inputMax].FloatValue()
	if err != nil {
		p.errMsg = fmt.Sprintf("error: x max %q is not a number", p.form.Value(inputMax))
		return
	}

	v := strings.TrimSpace(p.form.Value(inputVar))
	fig, err := p.assistant.Plot(p.form.Value(inputExpr), v, lo, hi)
	if err != nil {
		p.errMsg = "error: " + err.Error()
		return
	}
	p.figure = fig
}

func (p *PlotScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Function plot"))
	b.WriteString("\n\n")

	top := p.form.View()
	if pw := components.PanelWidth(width); pw > 0 {
		top = components.Columns(top, components.Panel("Examples", examplesText(), pw), width)
	}
	b.WriteString(top)
	b.WriteString("\n\n")

	switch {
	case p.errMsg != "":
		b.WriteString(theme.ErrorText.Width(width).Render(p.errMsg))
	case p.figure != nil:
		chartHeight := height - lipgloss.Height(b.String())
		b.WriteString(components.Chart(components.ChartData{
			X:      p.figure.X,
			Y:      p.figure.Y,
			Title:  p.figure.Title,
			XLabel: p.figure.XLabel,
			YLabel: p.figure.YLabel,
			Legend: p.figure.Legend,
		}, width, max(chartHeight, 8)))
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

func examplesText() string {
	lines := make([]string, len(examples))
	for i, ex := range examples {
		lines[i] = theme.Hint.Render(ex.group+": ") + theme.Body.Render(ex.exprs)
	}
	return strings.Join(lines, "\n")
}
