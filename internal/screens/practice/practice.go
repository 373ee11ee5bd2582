// Package practice implements the Practice mode.
package practice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/explain"
	"github.com/abhisek/calctutor/internal/problembank"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/screens/tutor"
	"github.com/abhisek/calctutor/internal/ui/components"
	"github.com/abhisek/calctutor/internal/ui/layout"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

const (
	buttonSubmit = iota
	buttonSolution
	buttonNext
	buttonHint
)

type feedback int

const (
	feedbackNone feedback = iota
	feedbackCorrect
	feedbackIncorrect
)

// PracticeScreen serves problems from the bank and checks answers.
type PracticeScreen struct {
	assistant *assistant.Assistant
	explainer *explain.Service

	difficulty   components.Choice
	onDifficulty bool
	focused      bool
	form         components.Form

	problem      problembank.Problem
	feedback     feedback
	showSolution bool
	tutor        tutor.State

	attempted, solved int
	submitted         bool // current problem has been submitted at least once
	solvedCurrent     bool
}

var _ screen.Screen = (*PracticeScreen)(nil)

// New creates a PracticeScreen and draws the first easy problem.
// explainer may be nil, in which case the hint button is hidden.
func New(a *assistant.Assistant, explainer *explain.Service) *PracticeScreen {
	options := make([]string, len(problembank.Difficulties))
	for i, d := range problembank.Difficulties {
		options[i] = string(d)
	}
	hint := components.NewButton("Hint")
	hint.Hidden = explainer == nil

	p := &PracticeScreen{
		assistant:  a,
		explainer:  explainer,
		difficulty: components.NewChoice("Difficulty", options),
		form: components.NewForm(
			[]components.TextInput{components.NewTextInput("Answer", "", false, 128)},
			[]components.Button{
				components.NewButton("Submit"),
				components.NewButton("Show solution"),
				components.NewButton("Next problem"),
				hint,
			},
		),
	}
	p.next()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) Focus() tea.Cmd {
	p.focused = true
	if p.onDifficulty {
		return nil
	}
	return p.form.Focus()
}

func (p *PracticeScreen) Blur() {
	p.focused = false
	p.form.Blur()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.onDifficulty {
		return []layout.KeyHint{
			{Key: "←→", Description: "Difficulty"},
			{Key: "Tab", Description: "Answer"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+N", Description: "Next problem"},
		{Key: "Esc", Description: "Menu"},
	}
}

// Problem returns the problem on screen.
func (p *PracticeScreen) Problem() problembank.Problem {
	return p.problem
}

// Difficulty returns the selected difficulty.
func (p *PracticeScreen) Difficulty() problembank.Difficulty {
	return problembank.Difficulty(p.difficulty.Value())
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutor.ExplanationMsg:
		p.tutor.Accept(p, msg)
		return p, nil
	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	if p.onDifficulty {
		return p, nil
	}
	var cmd tea.Cmd
	p.form, cmd, _ = p.form.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+n" {
		p.next()
		return p, nil
	}

	if p.onDifficulty {
		switch key {
		case "tab", "down", "enter":
			p.onDifficulty = false
			return p, p.form.SetFocus(0)
		}
		var changed bool
		p.difficulty, changed = p.difficulty.Update(msg)
		if changed {
			p.next()
		}
		return p, nil
	}

	if (key == "shift+tab" || key == "up") && p.form.FocusIndex() == 0 {
		p.onDifficulty = true
		p.form.Blur()
		return p, nil
	}

	var (
		cmd     tea.Cmd
		pressed int
	)
	p.form, cmd, pressed = p.form.Update(msg)
	switch pressed {
	case buttonSubmit:
		p.submit()
	case buttonSolution:
		p.showSolution = true
	case buttonNext:
		p.next()
	case buttonHint:
		return p, tea.Batch(cmd, p.requestHint())
	}
	return p, cmd
}

// next draws a new problem at the selected difficulty and resets the
// answer state.
func (p *PracticeScreen) next() {
	p.problem = p.assistant.SelectProblem(p.Difficulty())
	p.form.Inputs[0].SetValue("")
	p.feedback = feedbackNone
	p.showSolution = false
	p.submitted, p.solvedCurrent = false, false
	p.tutor.Clear()
}

func (p *PracticeScreen) submit() {
	correct := p.assistant.CheckAnswer(p.problem, p.form.Value(0))
	p.form.Inputs[0].Mark(correct)
	if correct {
		p.feedback = feedbackCorrect
	} else {
		p.feedback = feedbackIncorrect
	}

	if !p.submitted {
		p.submitted = true
		p.attempted++
	}
	if correct && !p.solvedCurrent {
		p.solvedCurrent = true
		p.solved++
	}
}

func (p *PracticeScreen) requestHint() tea.Cmd {
	if p.explainer == nil || p.tutor.Loading {
		return nil
	}
	input := explain.Input{Kind: explain.KindPractice, Question: p.problem.Question}
	if p.showSolution {
		input.Answer = p.problem.Answer
	}
	seq := p.tutor.Start()
	return tutor.Request(p.explainer, p, seq, input)
}

func (p *PracticeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Practice problems"))
	b.WriteString("\n\n")
	b.WriteString(p.difficulty.View(p.focused && p.onDifficulty))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Question"))
	b.WriteString("\n")
	b.WriteString(theme.Code.Width(width - 2).Render(p.problem.Question))
	b.WriteString("\n\n")

	b.WriteString(p.form.View())
	b.WriteString("\n\n")

	switch p.feedback {
	case feedbackCorrect:
		b.WriteString(theme.Correct.Render("✓ Correct!"))
		b.WriteString("\n\n")
	case feedbackIncorrect:
		b.WriteString(theme.Incorrect.Render("✗ Not quite, try again"))
		b.WriteString("\n\n")
	}

	if p.showSolution {
		b.WriteString(theme.Subtitle.Render("Answer: "))
		b.WriteString(theme.Body.Render(p.problem.Answer))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Solution: "))
		b.WriteString(lipgloss.NewStyle().Width(width - 10).Foreground(theme.Text).Render(p.problem.Solution))
		b.WriteString("\n\n")
	}

	if t := p.tutor.View(width); t != "" {
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString(components.NewProgressBar("Solved", p.solved, p.attempted, min(width, 50)).View())

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}
