package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and calctutor styling.
type TextInput struct {
	Label   string
	Model   textinput.Model
	Numeric bool
	marked  bool
	valid   bool
}

// NewTextInput creates a new styled text input holding value. Numeric
// inputs only accept characters that can appear in a decimal number.
func NewTextInput(label, value string, numeric bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.SetValue(value)
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{
		Label:   label,
		Model:   ti,
		Numeric: numeric,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Numeric {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			if strings.IndexFunc(kmsg.Text, notNumeric) >= 0 {
				return t, nil
			}
		}
	}
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.marked = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func notNumeric(r rune) bool {
	return !(r >= '0' && r <= '9') && !strings.ContainsRune(".-+eE", r)
}

// View renders the label and the input.
func (t TextInput) View() string {
	label := theme.Label.Render(t.Label)
	if t.Model.Focused() {
		label = theme.Label.Foreground(theme.Primary).Render(t.Label)
	}
	view := label + t.Model.View()
	if t.marked {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value and clears any mark.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.marked = false
}

// FloatValue parses the input as a decimal number.
func (t TextInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(t.Model.Value()), 64)
}

// Mark shows a check or cross beside the input until the next key press.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}
