package history

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/screen"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

const (
	LoadingText = "Loading..."
	EmptyText   = "No activity yet. Start by generating notes or a quiz!"
	ErrorText   = "Could not load history."
)

// TimeLayout formats entry timestamps in the local time zone.
const TimeLayout = "Jan 2, 2006, 3:04:05 PM"

// InvalidTime stands in for an entry without a timestamp.
const InvalidTime = "Invalid Date"

// Fetcher loads the activity list.
type Fetcher interface {
	History(ctx context.Context) ([]api.HistoryEntry, error)
}

type historyLoadedMsg struct {
	seq     int
	entries []api.HistoryEntry
	err     error
}

// HistoryScreen displays recent activity.
type HistoryScreen struct {
	fetcher  Fetcher
	logger   *log.Logger
	loc      *time.Location
	seq      int
	entries  []api.HistoryEntry
	message  string
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.Activator = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen rendering times in loc. A nil loc means
// time.Local.
func New(fetcher Fetcher, logger *log.Logger, loc *time.Location) *HistoryScreen {
	if loc == nil {
		loc = time.Local
	}
	return &HistoryScreen{
		fetcher: fetcher,
		logger:  logger.With("component", "history"),
		loc:     loc,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.Activate()
}

// Activate clears the list, shows the loading text and issues one fetch.
// Results of earlier fetches still in flight are dropped on arrival.
func (s *HistoryScreen) Activate() tea.Cmd {
	s.seq++
	s.entries = nil
	s.selected = 0
	s.message = LoadingText

	seq := s.seq
	fetcher := s.fetcher
	return func() tea.Msg {
		entries, err := fetcher.History(context.Background())
		return historyLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "r", Description: "Reload"},
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Entries returns the entries currently listed.
func (s *HistoryScreen) Entries() []api.HistoryEntry {
	return s.entries
}

// Message returns the status text shown above the list.
func (s *HistoryScreen) Message() string {
	return s.message
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		switch {
		case msg.err != nil:
			s.logger.Error("History error", "err", msg.err)
			s.message = ErrorText
		case len(msg.entries) == 0:
			s.message = EmptyText
		default:
			s.message = ""
			s.entries = msg.entries
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "r":
			return s, s.Activate()
		}
	}
	return s, nil
}

// FormatTime renders t in the screen's time zone.
func (s *HistoryScreen) FormatTime(t time.Time) string {
	return t.In(s.loc).Format(TimeLayout)
}

// EntryTime renders the timestamp of e in loc. An unparseable timestamp is
// shown as sent.
func EntryTime(e api.HistoryEntry, loc *time.Location) string {
	switch {
	case !e.CreatedAt.IsZero():
		return e.CreatedAt.In(loc).Format(TimeLayout)
	case e.RawCreatedAt != "":
		return e.RawCreatedAt
	default:
		return InvalidTime
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.message != "" {
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim)
		if s.message == EmptyText {
			style = style.Italic(true)
		}
		return style.Render("\n\n" + s.message)
	}

	kindStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Width(10)
	timeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("\n")
	for i, e := range s.entries {
		cursor := "  "
		title := theme.Unselected.Render(e.Title)
		if i == s.selected {
			cursor = "▸ "
			title = theme.Selected.Render(e.Title)
		}
		b.WriteString("  " + cursor + kindStyle.Render(e.Kind) + " " + title + "\n")
		b.WriteString("      " + timeStyle.Render(EntryTime(e, s.loc)) + "\n")
	}
	return b.String()
}
