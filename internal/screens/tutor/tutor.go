// Package tutor connects screens to the AI explanation service.
package tutor

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/explain"
	"github.com/abhisek/calctutor/internal/ui/theme"
)

// ExplanationMsg carries a finished explanation back to the screen that
// asked for it. Screens ignore messages whose Owner is not themselves or
// whose Seq is stale.
type ExplanationMsg struct {
	Owner       any
	Seq         int
	Explanation *explain.Explanation
	Err         error
}

// Request returns a command that runs svc.Explain off the update loop.
func Request(svc *explain.Service, owner any, seq int, input explain.Input) tea.Cmd {
	return func() tea.Msg {
		exp, err := svc.Explain(context.Background(), input)
		return ExplanationMsg{Owner: owner, Seq: seq, Explanation: exp, Err: err}
	}
}

// State tracks one screen's explanation panel.
type State struct {
	seq     int
	Loading bool
	Result  *explain.Explanation
	Err     error
}

// Start marks a new request in flight and returns its sequence number.
func (s *State) Start() int {
	s.seq++
	s.Loading = true
	s.Result = nil
	s.Err = nil
	return s.seq
}

// Clear drops any shown or pending explanation.
func (s *State) Clear() {
	s.seq++
	s.Loading = false
	s.Result = nil
	s.Err = nil
}

// Accept applies msg if it answers the latest request from owner.
func (s *State) Accept(owner any, msg ExplanationMsg) bool {
	if msg.Owner != owner || msg.Seq != s.seq {
		return false
	}
	s.Loading = false
	s.Result = msg.Explanation
	s.Err = msg.Err
	return true
}

// View renders the panel, or "" when there is nothing to show.
func (s State) View(width int) string {
	switch {
	case s.Loading:
		return theme.Hint.Render("Asking the tutor...")
	case s.Err != nil:
		return theme.ErrorText.Render("explanation unavailable: " + s.Err.Error())
	case s.Result == nil:
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Tutor"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(s.Result.Summary))
	b.WriteString("\n")
	for i, step := range s.Result.Steps {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).
			Render(fmt.Sprintf("%d. %s", i+1, step)))
		b.WriteString("\n")
	}
	return b.String()
}
