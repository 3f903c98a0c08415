package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prepgenius/prepgenius/internal/ui/layout"
)

// Screen defines the interface for all application panels.
type Screen interface {
	// Init returns an initial command when the panel is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the panel content (excluding header, nav and footer).
	View(width, height int) string

	// Title returns the panel name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Activator is implemented by panels that reload when they are shown.
type Activator interface {
	Activate() tea.Cmd
}
