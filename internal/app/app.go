// Package app wires the calculus tutor's modes into one Bubble Tea program:
// a sidebar of modes beside the active mode's screen.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/explain"
	"github.com/abhisek/calctutor/internal/router"
	"github.com/abhisek/calctutor/internal/screen"
	"github.com/abhisek/calctutor/internal/screens/calculus"
	"github.com/abhisek/calctutor/internal/screens/help"
	"github.com/abhisek/calctutor/internal/screens/home"
	"github.com/abhisek/calctutor/internal/screens/knowledge"
	"github.com/abhisek/calctutor/internal/screens/plot"
	"github.com/abhisek/calctutor/internal/screens/practice"
	"github.com/abhisek/calctutor/internal/ui/components"
	"github.com/abhisek/calctutor/internal/ui/layout"
)

// Mode is one of the tutor's top-level views.
type Mode int

const (
	ModeHome Mode = iota
	ModeDerivative
	ModeIntegral
	ModePlot
	ModePractice
	ModeKnowledge
	modeCount
)

var modeNames = [modeCount]string{"Home", "Derivative", "Integral", "Plot", "Practice", "Knowledge"}

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Options configures the application.
type Options struct {
	Assistant *assistant.Assistant

	// Explainer is optional. Without it the Explain and Hint actions are
	// hidden.
	Explainer *explain.Service

	// TutorLabel names the AI tutor model in the header and on Home.
	TutorLabel string

	Logger *zap.Logger
}

// modeSelectedMsg is emitted by the sidebar menu.
type modeSelectedMsg struct {
	mode Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	menu    components.Menu
	screens [modeCount]screen.Screen
	mode    Mode

	// sidebarFocused routes keys to the menu instead of the mode screen.
	sidebarFocused bool

	tutorLabel string
	logger     *zap.Logger
	width      int
	height     int
}

// New creates the AppModel showing Home with the sidebar focused.
func New(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := opts.Assistant

	var screens [modeCount]screen.Screen
	screens[ModeHome] = home.New(a.Bank().Counts(), opts.TutorLabel)
	screens[ModeDerivative] = calculus.New(calculus.Derivative, a, opts.Explainer)
	screens[ModeIntegral] = calculus.New(calculus.Integral, a, opts.Explainer)
	screens[ModePlot] = plot.New(a)
	screens[ModePractice] = practice.New(a, opts.Explainer)
	screens[ModeKnowledge] = knowledge.New(a)

	items := make([]components.MenuItem, 0, modeCount)
	for mode := range modeCount {
		items = append(items, components.MenuItem{
			Label: mode.String(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return modeSelectedMsg{mode: mode} }
			},
		})
	}

	return AppModel{
		router:         router.New(screens[ModeHome]),
		menu:           components.NewMenu(items),
		screens:        screens,
		mode:           ModeHome,
		sidebarFocused: true,
		tutorLabel:     opts.TutorLabel,
		logger:         logger.Named("app"),
	}
}

// Mode returns the mode on screen.
func (m AppModel) Mode() Mode {
	return m.mode
}

// SidebarFocused reports whether keys go to the sidebar.
func (m AppModel) SidebarFocused() bool {
	return m.sidebarFocused
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case modeSelectedMsg:
		return m.selectMode(msg.mode)
	}

	// Replies to requests started before a mode switch still reach their
	// screen.
	var cmds []tea.Cmd
	active := m.router.Active()
	for _, s := range m.screens {
		if s != active {
			_, cmd := s.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.router.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m AppModel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay.
	if m.router.Depth() > 1 {
		if key == "esc" || key == "?" || key == "q" {
			return m, m.router.Update(router.PopScreenMsg{})
		}
		return m, nil
	}

	if m.sidebarFocused {
		switch key {
		case "q":
			return m, tea.Quit
		case "?":
			return m, m.router.Update(router.PushScreenMsg{Screen: help.New()})
		case "tab":
			return m, m.focusContent()
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	if key == "esc" {
		m.focusSidebar()
		return m, nil
	}
	return m, m.router.Update(msg)
}

func (m AppModel) selectMode(mode Mode) (tea.Model, tea.Cmd) {
	if mode < 0 || mode >= modeCount {
		return m, nil
	}
	if mode != m.mode {
		m.logger.Debug("mode selected", zap.Stringer("mode", mode))
	}
	m.mode = mode
	m.menu.Current = int(mode)
	m.menu.Selected = int(mode)
	cmd := m.router.Update(router.ReplaceScreenMsg{Screen: m.screens[mode]})
	return m, tea.Batch(cmd, m.focusContent())
}

// focusContent hands the keyboard to the active screen when it takes
// input. Screens without inputs leave the sidebar focused.
func (m *AppModel) focusContent() tea.Cmd {
	f, ok := m.screens[m.mode].(screen.Focusable)
	if !ok {
		return nil
	}
	m.sidebarFocused = false
	return f.Focus()
}

func (m *AppModel) focusSidebar() {
	m.sidebarFocused = true
	if f, ok := m.screens[m.mode].(screen.Focusable); ok {
		f.Blur()
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.router.Depth() > 1 || !m.sidebarFocused {
		var hints []layout.KeyHint
		if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}
	status := ""
	if m.tutorLabel != "" {
		status = "tutor: " + m.tutorLabel
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := layout.ContentHeight(m.height)
	content := m.router.View(layout.ContentWidth(m.width)-1, contentHeight)
	body := layout.RenderBody(m.menu.View(), content, m.sidebarFocused, m.width, contentHeight)

	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	opts.Logger.Info("starting tutor", zap.Bool("ai_tutor", opts.Explainer != nil))

	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	opts.Logger.Info("tutor exited")
	return nil
}
