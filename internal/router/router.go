// Package router switches between the fixed set of panels.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prepgenius/prepgenius/internal/screen"
)

// Page IDs in navigation order.
const (
	Dashboard = "dashboard"
	Notes     = "notes"
	Quiz      = "quiz"
	Questions = "questions"
	Chat      = "chat"
	Mentor    = "mentor"
	History   = "history"
)

// Order lists every page ID in navigation order.
var Order = []string{Dashboard, Notes, Quiz, Questions, Chat, Mentor, History}

// SwitchPageMsg requests the router to show another page.
type SwitchPageMsg struct {
	Page string
}

// SwitchTo returns a command that requests a page switch.
func SwitchTo(page string) tea.Cmd {
	return func() tea.Msg { return SwitchPageMsg{Page: page} }
}

// Page is a panel together with its navigation entry.
type Page struct {
	ID     string
	Label  string
	Screen screen.Screen
}

// PanelID returns the panel identifier for a page ID.
func PanelID(page string) string {
	return "page-" + page
}

// Router holds every page and tracks which one is shown.
type Router struct {
	pages   []Page
	current string
}

// New creates a Router over pages. Nothing is visible until Switch.
func New(pages ...Page) *Router {
	return &Router{pages: pages}
}

// Init initialises every page.
func (r *Router) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, p := range r.pages {
		cmds = append(cmds, p.Screen.Init())
	}
	return tea.Batch(cmds...)
}

// Switch shows the page with the given ID and hides every other. An unknown
// ID hides everything. Pages implementing screen.Activator are activated.
func (r *Router) Switch(page string) tea.Cmd {
	r.current = page
	active := r.Active()
	if a, ok := active.(screen.Activator); ok {
		return a.Activate()
	}
	return nil
}

// Current returns the ID last passed to Switch.
func (r *Router) Current() string {
	return r.current
}

// Next switches to the page after the current one, wrapping around.
func (r *Router) Next() tea.Cmd {
	if len(r.pages) == 0 {
		return nil
	}
	return r.Switch(r.pages[(r.index()+1)%len(r.pages)].ID)
}

// Prev switches to the page before the current one, wrapping around.
func (r *Router) Prev() tea.Cmd {
	if len(r.pages) == 0 {
		return nil
	}
	i := r.index() - 1
	if i < 0 {
		i = len(r.pages) - 1
	}
	return r.Switch(r.pages[i].ID)
}

func (r *Router) index() int {
	for i, p := range r.pages {
		if p.ID == r.current {
			return i
		}
	}
	return 0
}

// Pages returns the pages in navigation order.
func (r *Router) Pages() []Page {
	return r.pages
}

// Active returns the visible screen, or nil when none is visible.
func (r *Router) Active() screen.Screen {
	for _, p := range r.pages {
		if p.ID == r.current {
			return p.Screen
		}
	}
	return nil
}

// Panels reports the visibility of every panel keyed by panel ID.
func (r *Router) Panels() map[string]bool {
	out := make(map[string]bool, len(r.pages))
	for _, p := range r.pages {
		out[PanelID(p.ID)] = p.ID == r.current
	}
	return out
}

// NavButtons reports which navigation entry is active keyed by page ID.
func (r *Router) NavButtons() map[string]bool {
	out := make(map[string]bool, len(r.pages))
	for _, p := range r.pages {
		out[p.ID] = p.ID == r.current
	}
	return out
}

// Update handles navigation messages. User input (keys, pastes and mouse
// events) goes to the visible page only; every other message is delivered
// to all pages so results of background requests reach hidden panels.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchPageMsg:
		return r.Switch(msg.Page)
	case tea.KeyMsg, tea.PasteMsg, tea.PasteStartMsg, tea.PasteEndMsg, tea.MouseMsg:
		return r.updateActive(msg)
	}

	cmds := make([]tea.Cmd, 0, len(r.pages))
	for i, p := range r.pages {
		updated, cmd := p.Screen.Update(msg)
		r.pages[i].Screen = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// updateActive delivers msg to the visible page.
func (r *Router) updateActive(msg tea.Msg) tea.Cmd {
	for i, p := range r.pages {
		if p.ID == r.current {
			updated, cmd := p.Screen.Update(msg)
			r.pages[i].Screen = updated
			return cmd
		}
	}
	return nil
}

// View renders the visible page.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
