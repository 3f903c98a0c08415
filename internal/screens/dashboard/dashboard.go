// Package dashboard shows the study summary and links to every tool.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/router"
	"github.com/prepgenius/prepgenius/internal/screen"
	"github.com/prepgenius/prepgenius/internal/ui/components"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// RefreshMsg asks the dashboard to reload its summary. Forms emit it after
// a successful generation.
type RefreshMsg struct{}

// Refresh is a command emitting RefreshMsg.
func Refresh() tea.Msg { return RefreshMsg{} }

// Fetcher loads the dashboard summary.
type Fetcher interface {
	Dashboard(ctx context.Context) (*api.DashboardSummary, error)
}

type loadedMsg struct {
	summary *api.DashboardSummary
	err     error
}

// DashboardScreen displays counters, the daily goal and the tool cards.
type DashboardScreen struct {
	fetcher Fetcher
	logger  *log.Logger
	summary api.DashboardSummary
	menu    components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Activator = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(fetcher Fetcher, logger *log.Logger) *DashboardScreen {
	return &DashboardScreen{
		fetcher: fetcher,
		logger:  logger.With("component", "dashboard"),
		summary: api.DashboardSummary{DailyGoal: api.DefaultDailyGoal},
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Smart Notes", Description: "Turn a PDF into study notes", Action: switchTo(router.Notes)},
			{Label: "Quiz Generator", Description: "Multiple-choice quiz from a PDF", Action: switchTo(router.Quiz)},
			{Label: "Question Bank", Description: "Exam-style questions from a PDF", Action: switchTo(router.Questions)},
			{Label: "AI Tutor Chat", Description: "Ask anything", Action: switchTo(router.Chat)},
			{Label: "Study Mentor", Description: "Day-by-day study plan", Action: switchTo(router.Mentor)},
			{Label: "History", Description: "Recent activity", Action: switchTo(router.History)},
		}),
	}
}

func switchTo(page string) func() tea.Cmd {
	return func() tea.Cmd { return router.SwitchTo(page) }
}

func (s *DashboardScreen) Init() tea.Cmd {
	return s.Load()
}

// Activate reloads the summary whenever the dashboard is shown.
func (s *DashboardScreen) Activate() tea.Cmd {
	return s.Load()
}

// Load fetches the summary in the background.
func (s *DashboardScreen) Load() tea.Cmd {
	fetcher := s.fetcher
	return func() tea.Msg {
		sum, err := fetcher.Dashboard(context.Background())
		return loadedMsg{summary: sum, err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Tools"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Summary returns the values currently shown.
func (s *DashboardScreen) Summary() api.DashboardSummary {
	return s.summary
}

// Subtitle returns the daily goal line.
func (s *DashboardScreen) Subtitle() string {
	return fmt.Sprintf("%d out of %d tasks completed. Keep it up!", s.summary.TodayActions, s.summary.DailyGoal)
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.logger.Error("Dashboard error", "err", msg.err)
			return s, nil
		}
		s.summary = *msg.summary
		return s, nil

	case RefreshMsg:
		return s, s.Load()

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	cw := min(width-4, 76)

	stat := func(label string, value int) string {
		return theme.Card.Width(cw/3 - 1).Render(
			theme.Subtitle.Render(label) + "\n" +
				lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d", value)))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Day streak", s.summary.DayStreak),
		stat("Notes created", s.summary.NotesCreated),
		stat("Quizzes taken", s.summary.QuizzesTaken),
	)

	bar := components.NewProgressBar("Daily goal", s.summary.GoalProgress, true, cw)
	goal := bar.View() + "\n" + theme.Subtitle.Render(s.Subtitle())

	var b strings.Builder
	b.WriteString(theme.Title.Render("Welcome back"))
	b.WriteString("\n\n")
	b.WriteString(stats)
	b.WriteString("\n\n")
	b.WriteString(goal)
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Tools"))
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
