package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/logging"
	"github.com/prepgenius/prepgenius/internal/router"
	"github.com/prepgenius/prepgenius/internal/screen"
	"github.com/prepgenius/prepgenius/internal/screens/chat"
	"github.com/prepgenius/prepgenius/internal/screens/dashboard"
	"github.com/prepgenius/prepgenius/internal/screens/docform"
	"github.com/prepgenius/prepgenius/internal/screens/history"
	"github.com/prepgenius/prepgenius/internal/screens/mentor"
	"github.com/prepgenius/prepgenius/internal/screens/quiz"
	"github.com/prepgenius/prepgenius/internal/session"
	"github.com/prepgenius/prepgenius/internal/submit"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
)

// Backend is everything the panels need from the API.
type Backend interface {
	submit.Backend
	dashboard.Fetcher
	history.Fetcher
}

// Options holds the dependencies of the TUI.
type Options struct {
	Backend   Backend
	Session   *session.Session
	Logger    *log.Logger
	ExportDir string
	// Location is used for history timestamps. Nil means time.Local.
	Location *time.Location
}

// pageKeys maps function keys to pages in navigation order.
var pageKeys = map[string]string{
	"f1": router.Dashboard,
	"f2": router.Notes,
	"f3": router.Quiz,
	"f4": router.Questions,
	"f5": router.Chat,
	"f6": router.Mentor,
	"f7": router.History,
}

var navLabels = map[string]string{
	router.Dashboard: "Dashboard",
	router.Notes:     "Notes",
	router.Quiz:      "Quiz",
	router.Questions: "Questions",
	router.Chat:      "Chat",
	router.Mentor:    "Mentor",
	router.History:   "History",
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel builds every panel and shows the dashboard.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	sess := opts.Session
	if sess == nil {
		sess = &session.Session{Username: session.FallbackUsername}
	}
	sub := submit.New(opts.Backend, logger)

	screens := map[string]screen.Screen{
		router.Dashboard: dashboard.New(opts.Backend, logger),
		router.Notes:     docform.New(docform.NotesConfig(opts.ExportDir), sub, logger),
		router.Quiz:      quiz.New(sub),
		router.Questions: docform.New(docform.QuestionsConfig(opts.ExportDir), sub, logger),
		router.Chat:      chat.New(sub, opts.ExportDir, logger),
		router.Mentor:    mentor.New(sub, opts.ExportDir, logger),
		router.History:   history.New(opts.Backend, logger, opts.Location),
	}
	pages := make([]router.Page, 0, len(router.Order))
	for _, id := range router.Order {
		pages = append(pages, router.Page{ID: id, Label: navLabels[id], Screen: screens[id]})
	}

	r := router.New(pages...)
	// Each page's Init performs its first load, so the initial switch
	// needs no activation.
	_ = r.Switch(router.Dashboard)

	return AppModel{router: r, session: sess}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			return m, m.router.Next()
		case "ctrl+p":
			return m, m.router.Prev()
		case "esc":
			if m.router.Current() != router.Dashboard {
				return m, m.router.Switch(router.Dashboard)
			}
			return m, nil
		}
		if page, ok := pageKeys[key]; ok {
			return m, m.router.Switch(page)
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) navItems() []layout.NavItem {
	active := m.router.NavButtons()
	items := make([]layout.NavItem, 0, len(m.router.Pages()))
	for i, p := range m.router.Pages() {
		items = append(items, layout.NavItem{
			Key:    fmt.Sprintf("F%d", i+1),
			Label:  p.Label,
			Active: active[p.ID],
		})
	}
	return items
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame around the active page.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.session.Username, m.width)
	nav := layout.RenderNav(m.navItems(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "F1-F7", Description: "Pages"},
		{Key: "Esc", Description: "Dashboard"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := layout.ContentHeight(header, nav, footer, m.height)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, nav, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
