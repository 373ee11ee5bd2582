package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/calctutor/internal/ui/theme"
)

// Choice is a horizontal single-choice selector.
type Choice struct {
	Label    string
	Options  []string
	Selected int
}

// NewChoice creates a selector with the first option selected.
func NewChoice(label string, options []string) Choice {
	return Choice{Label: label, Options: options}
}

// Update moves the selection with left/right. changed reports whether the
// selection moved.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, false
	}
	prev := c.Selected
	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, c.Selected != prev
}

// Value returns the selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the selector. focused highlights the label.
func (c Choice) View(focused bool) string {
	label := theme.Label.Render(c.Label)
	if focused {
		label = theme.Label.Foreground(theme.Primary).Render(c.Label)
	}
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts[i] = theme.Selected.Render("[" + opt + "]")
		} else {
			parts[i] = theme.Hint.Render(" " + opt + " ")
		}
	}
	return label + strings.Join(parts, " ")
}
