// Package calculus implements the Derivative and Integral modes.
package calculus

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/explain"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/screens/tutor"
	"github.com/abhisek/calctutor/internal/ui/components"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

// Operation selects which calculator the screen is.
type Operation int

const (
	Derivative Operation = iota
	Integral
)

type example struct{ expr, result string }

type operationInfo struct {
	title    string
	button   string
	initial  string
	kind     explain.Kind
	examples []example
	compute  func(a *assistant.Assistant, expr, v string) assistant.Result
}

var operations = map[Operation]operationInfo{
	Derivative: {
		title:   "Derivative",
		button:  "Differentiate",
		initial: "x**2 + 3*x + 1",
		kind:    explain.KindDerivative,
		examples: []example{
			{"x**2", "2*x"},
			{"sin(x)", "cos(x)"},
			{"exp(x)", "exp(x)"},
			{"log(x)", "1/x"},
		},
		compute: (*assistant.Assistant).Differentiate,
	},
	Integral: {
		title:   "Integral",
		button:  "Integrate",
		initial: "2*x + 1",
		kind:    explain.KindIntegral,
		examples: []example{
			{"2*x", "x**2"},
			{"cos(x)", "sin(x)"},
			{"1/x", "log(x)"},
			{"exp(x)", "exp(x)"},
		},
		compute: (*assistant.Assistant).Integrate,
	},
}

const (
	inputExpr = iota
	inputVar
)

const (
	buttonCompute = iota
	buttonExplain
)

// CalculusScreen reads an expression and a variable and shows the
// derivative or integral.
type CalculusScreen struct {
	op        operationInfo
	assistant *assistant.Assistant
	explainer *explain.Service

	form     components.Form
	result   *assistant.Result
	computed struct{ expr, variable string }
	tutor    tutor.State
}

var _ screen.Screen = (*CalculusScreen)(nil)

// New creates a calculator screen. explainer may be nil, in which case the
// explain button is hidden.
func New(op Operation, a *assistant.Assistant, explainer *explain.Service) *CalculusScreen {
	info := operations[op]
	explainButton := components.NewButton("Explain")
	explainButton.Hidden = true
	return &CalculusScreen{
		op:        info,
		assistant: a,
		explainer: explainer,
		form: components.NewForm(
			[]components.TextInput{
				components.NewTextInput("f(x) =", info.initial, false, 256),
				components.NewTextInput("Variable", assistant.DefaultVariable, false, 32),
			},
			[]components.Button{components.NewButton(info.button), explainButton},
		),
	}
}

func (s *CalculusScreen) Init() tea.Cmd {
	return nil
}

func (s *CalculusScreen) Title() string {
	return s.op.title
}

func (s *CalculusScreen) Focus() tea.Cmd {
	return s.form.Focus()
}

func (s *CalculusScreen) Blur() {
	s.form.Blur()
}

func (s *CalculusScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: s.op.button},
	}
	if s.canExplain() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Menu"})
}

func (s *CalculusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutor.ExplanationMsg:
		s.tutor.Accept(s, msg)
		return s, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+e" {
			return s, s.requestExplanation()
		}
	}

	var (
		cmd     tea.Cmd
		pressed int
	)
	s.form, cmd, pressed = s.form.Update(msg)
	switch pressed {
	case buttonCompute:
		s.compute()
	case buttonExplain:
		return s, tea.Batch(cmd, s.requestExplanation())
	}
	return s, cmd
}

func (s *CalculusScreen) compute() {
	expr := s.form.Value(inputExpr)
	v := strings.TrimSpace(s.form.Value(inputVar))
	r := s.op.compute(s.assistant, expr, v)
	s.result = &r
	s.computed.expr, s.computed.variable = expr, v
	s.tutor.Clear()
	s.form.Buttons[buttonExplain].Hidden = !s.canExplain()
}

func (s *CalculusScreen) canExplain() bool {
	return s.explainer != nil && s.result != nil && s.result.OK()
}

func (s *CalculusScreen) requestExplanation() tea.Cmd {
	if !s.canExplain() || s.tutor.Loading {
		return nil
	}
	seq := s.tutor.Start()
	return tutor.Request(s.explainer, s, seq, explain.Input{
		Kind:       s.op.kind,
		Expression: s.computed.expr,
		Variable:   s.computed.variable,
		Result:     s.result.Value,
	})
}

func (s *CalculusScreen) View(width, height int) string {
	panelWidth := components.PanelWidth(width)
	mainWidth := width
	if panelWidth > 0 {
		mainWidth = width - panelWidth - 2
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.op.title + " calculator"))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")

	if s.result != nil {
		if s.result.OK() {
			b.WriteString(theme.Correct.Render("Done"))
			b.WriteString("\n")
			b.WriteString(theme.Code.Width(mainWidth - 2).Render(s.result.Value))
		} else {
			b.WriteString(theme.ErrorText.Width(mainWidth).Render(s.result.Text()))
		}
		b.WriteString("\n\n")
	}
	if t := s.tutor.View(mainWidth); t != "" {
		b.WriteString(t)
	}

	main := b.String()
	if panelWidth == 0 {
		return lipgloss.NewStyle().MaxHeight(height).Render(main)
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(
		components.Columns(main, components.Panel("Examples", s.examples(), panelWidth), width))
}

func (s *CalculusScreen) examples() string {
	lines := make([]string, len(s.op.examples))
	for i, ex := range s.op.examples {
		lines[i] = theme.Body.Render(ex.expr) + theme.Hint.Render(" → ") + theme.Body.Render(ex.result)
	}
	return strings.Join(lines, "\n")
}
