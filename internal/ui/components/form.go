package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// NoPress is returned by Form.Update when no button was pressed.
const NoPress = -1

// Form is a column of labelled inputs followed by a row of buttons. Tab and
// the arrow keys move focus; Enter on an input presses the first button.
type Form struct {
	Inputs  []TextInput
	Buttons []Button
	focus   int
	active  bool
}

// NewForm creates a form. Nothing is focused until Focus is called.
func NewForm(inputs []TextInput, buttons []Button) Form {
	return Form{Inputs: inputs, Buttons: buttons}
}

// Focus activates the form and focuses the current field.
func (f *Form) Focus() tea.Cmd {
	f.active = true
	return f.apply()
}

// Blur deactivates the form.
func (f *Form) Blur() {
	f.active = false
	f.apply()
}

// FocusIndex returns the focused field: inputs first, then buttons.
func (f Form) FocusIndex() int { return f.focus }

// SetFocus moves focus to field i.
func (f *Form) SetFocus(i int) tea.Cmd {
	if i < 0 || i >= f.fields() {
		return nil
	}
	f.focus = i
	return f.apply()
}

func (f Form) fields() int { return len(f.Inputs) + len(f.Buttons) }

func (f *Form) apply() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.Inputs {
		if f.active && i == f.focus {
			cmd = f.Inputs[i].Focus()
		} else {
			f.Inputs[i].Blur()
		}
	}
	for i := range f.Buttons {
		f.Buttons[i].Focused = f.active && len(f.Inputs)+i == f.focus
	}
	return cmd
}

func (f *Form) move(delta int) tea.Cmd {
	n := f.fields()
	if n == 0 {
		return nil
	}
	next := f.focus
	for range n {
		next = (next + delta + n) % n
		if next < len(f.Inputs) || !f.Buttons[next-len(f.Inputs)].Hidden {
			break
		}
	}
	f.focus = next
	return f.apply()
}

// Update handles navigation and forwards other messages to the focused
// input. It returns the index of the button pressed, or NoPress.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd, int) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f, f.move(1), NoPress
		case "shift+tab", "up":
			return f, f.move(-1), NoPress
		case "enter":
			if f.focus < len(f.Inputs) {
				if len(f.Buttons) == 0 {
					return f, nil, NoPress
				}
				return f, nil, 0
			}
			return f, nil, f.focus - len(f.Inputs)
		}
	}

	if f.focus < len(f.Inputs) {
		var cmd tea.Cmd
		f.Inputs[f.focus], cmd = f.Inputs[f.focus].Update(msg)
		return f, cmd, NoPress
	}
	return f, nil, NoPress
}

// Value returns the value of input i.
func (f Form) Value(i int) string {
	return f.Inputs[i].Value()
}

// View renders the inputs one per line and the buttons on one row.
func (f Form) View() string {
	var b strings.Builder
	for _, in := range f.Inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	var buttons []string
	for _, btn := range f.Buttons {
		if v := btn.View(); v != "" {
			buttons = append(buttons, v, " ")
		}
	}
	if len(buttons) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return b.String()
}
