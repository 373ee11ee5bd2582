package components

import (
	"github.com/abhisek/calctutor/internal/ui/theme"
)

// Button is a styled button component. Focus is owned by the Form that
// holds it.
type Button struct {
	Label   string
	Focused bool
	Hidden  bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	if b.Hidden {
		return ""
	}
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}
