package docform

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/quiz"
	"github.com/prepgenius/prepgenius/internal/screens/dashboard"
	"github.com/prepgenius/prepgenius/internal/submit"
)

type stubBackend struct {
	text    string
	err     error
	notes   []api.NotesRequest
	qsCalls []api.QuestionsRequest
}

func (b *stubBackend) Notes(_ context.Context, req api.NotesRequest) (string, error) {
	b.notes = append(b.notes, req)
	return b.text, b.err
}
func (b *stubBackend) Questions(_ context.Context, req api.QuestionsRequest) (string, error) {
	b.qsCalls = append(b.qsCalls, req)
	return b.text, b.err
}
func (b *stubBackend) Quiz(context.Context, api.QuizRequest) ([]quiz.Question, error) {
	return nil, nil
}
func (b *stubBackend) Chat(context.Context, api.ChatRequest) (string, error)     { return "", nil }
func (b *stubBackend) Mentor(context.Context, api.MentorRequest) (string, error) { return "", nil }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlS() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

func testScreen(t *testing.T, cfg Config, b *stubBackend) *FormScreen {
	t.Helper()
	logger := log.New(&bytes.Buffer{})
	return New(cfg, submit.New(b, logger), logger)
}

func TestNotes_AppErrorShownWithoutRefresh(t *testing.T) {
	b := &stubBackend{err: &api.AppError{Endpoint: "/api/notes", Message: "quota exceeded"}}
	s := testScreen(t, NotesConfig(t.TempDir()), b)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.Output() != "Generating notes with AI..." {
		t.Errorf("Output = %q, want working text", s.Output())
	}
	if cmd == nil {
		t.Fatal("expected request command")
	}

	_, next := s.Update(cmd())
	if s.Output() != "quota exceeded" {
		t.Errorf("Output = %q, want %q", s.Output(), "quota exceeded")
	}
	if next != nil {
		t.Error("application errors must not refresh the dashboard")
	}
}

func TestNotes_SuccessRefreshesDashboard(t *testing.T) {
	b := &stubBackend{text: "# Cells\n- nucleus"}
	s := testScreen(t, NotesConfig(t.TempDir()), b)
	s.SetFile("/tmp/bio.pdf")
	s.SetPrompt("short")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	_, next := s.Update(cmd())

	if s.Output() != "# Cells\n- nucleus" {
		t.Errorf("Output = %q", s.Output())
	}
	if next == nil {
		t.Fatal("expected dashboard refresh")
	}
	if _, ok := next().(dashboard.RefreshMsg); !ok {
		t.Error("expected RefreshMsg")
	}
	if len(b.notes) != 1 || b.notes[0].FilePath != "/tmp/bio.pdf" || b.notes[0].Prompt != "short" {
		t.Errorf("unexpected request %+v", b.notes)
	}
}

func TestNotes_TransportError(t *testing.T) {
	b := &stubBackend{err: &api.TransportError{Op: "post", Err: errors.New("refused")}}
	s := testScreen(t, NotesConfig(t.TempDir()), b)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	_, next := s.Update(cmd())

	if s.Output() != submit.ContactError {
		t.Errorf("Output = %q", s.Output())
	}
	if next != nil {
		t.Error("transport errors must not refresh the dashboard")
	}
}

func TestQuestions_UsesQuestionsEndpoint(t *testing.T) {
	b := &stubBackend{text: "1. Define osmosis."}
	s := testScreen(t, QuestionsConfig(t.TempDir()), b)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.Output() != "Generating questions with AI..." {
		t.Errorf("Output = %q", s.Output())
	}
	s.Update(cmd())

	if len(b.qsCalls) != 1 || len(b.notes) != 0 {
		t.Errorf("notes=%d questions=%d", len(b.notes), len(b.qsCalls))
	}
	if s.Output() != "1. Define osmosis." {
		t.Errorf("Output = %q", s.Output())
	}
}

func TestResultForOtherKindIgnored(t *testing.T) {
	b := &stubBackend{text: "notes body"}
	notes := testScreen(t, NotesConfig(t.TempDir()), b)
	questions := testScreen(t, QuestionsConfig(t.TempDir()), b)

	_, cmd := notes.Update(specialKey(tea.KeyEnter))
	msg := cmd()
	notes.Update(msg)
	questions.Update(msg)

	if questions.Output() != "" {
		t.Errorf("questions panel picked up notes result: %q", questions.Output())
	}
}

func TestExportEmpty(t *testing.T) {
	s := testScreen(t, NotesConfig(t.TempDir()), &stubBackend{})

	s.Update(ctrlS())

	if s.output.Notice() != "Nothing to download yet." {
		t.Errorf("Notice = %q", s.output.Notice())
	}
}
