package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/router"
	"github.com/prepgenius/prepgenius/internal/screen"
)

type stubFetcher struct {
	summary *api.DashboardSummary
	err     error
	calls   int
}

func (f *stubFetcher) Dashboard(context.Context) (*api.DashboardSummary, error) {
	f.calls++
	return f.summary, f.err
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(f *stubFetcher) (*DashboardScreen, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(f, log.New(&buf)), &buf
}

func load(t *testing.T, s *DashboardScreen) {
	t.Helper()
	cmd := s.Load()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestDashboard_Scenario(t *testing.T) {
	f := &stubFetcher{summary: &api.DashboardSummary{
		DayStreak: 3, NotesCreated: 5, QuizzesTaken: 2,
		TodayActions: 2, DailyGoal: 4, GoalProgress: 50,
	}}
	s, _ := testScreen(f)
	load(t, s)

	if got := s.Subtitle(); got != "2 out of 4 tasks completed. Keep it up!" {
		t.Errorf("Subtitle = %q", got)
	}
	if s.Summary().GoalProgress != 50 {
		t.Errorf("GoalProgress = %d, want 50", s.Summary().GoalProgress)
	}

	view := s.View(100, 30)
	for _, want := range []string{"2 out of 4 tasks completed. Keep it up!", "50%", "Day streak"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboard_ErrorKeepsPriorValues(t *testing.T) {
	f := &stubFetcher{summary: &api.DashboardSummary{DayStreak: 7, DailyGoal: 4}}
	s, logs := testScreen(f)
	load(t, s)

	f.summary, f.err = nil, errors.New("connection refused")
	load(t, s)

	if s.Summary().DayStreak != 7 {
		t.Errorf("DayStreak = %d, want prior value 7", s.Summary().DayStreak)
	}
	if !strings.Contains(logs.String(), "Dashboard error") {
		t.Errorf("expected Dashboard error log, got %q", logs.String())
	}
	if strings.Contains(s.View(100, 30), "connection refused") {
		t.Error("dashboard failures must not be shown")
	}
}

func TestDashboard_RefreshMsgReloads(t *testing.T) {
	f := &stubFetcher{summary: &api.DashboardSummary{DailyGoal: 4}}
	s, _ := testScreen(f)

	_, cmd := s.Update(RefreshMsg{})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	cmd()
	if f.calls != 1 {
		t.Errorf("calls = %d, want 1", f.calls)
	}
}

func TestDashboard_ActivateReloads(t *testing.T) {
	var _ screen.Activator = (*DashboardScreen)(nil)
	f := &stubFetcher{summary: &api.DashboardSummary{DailyGoal: 4}}
	s, _ := testScreen(f)

	s.Activate()()
	if f.calls != 1 {
		t.Errorf("calls = %d, want 1", f.calls)
	}
}

func TestDashboard_ToolCardSwitchesPage(t *testing.T) {
	s, _ := testScreen(&stubFetcher{})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected switch command")
	}
	msg, ok := cmd().(router.SwitchPageMsg)
	if !ok || msg.Page != router.Quiz {
		t.Errorf("got %#v, want switch to %q", msg, router.Quiz)
	}
}

func TestDashboard_InitialGoal(t *testing.T) {
	s, _ := testScreen(&stubFetcher{})
	if got := s.Subtitle(); got != "0 out of 4 tasks completed. Keep it up!" {
		t.Errorf("Subtitle = %q", got)
	}
}
