package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/calctutor/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header, sidebar and footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Focusable is an optional interface for screens with text inputs. The
// app calls Focus when keyboard focus moves into the content area and
// Blur when it moves back to the sidebar.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}
