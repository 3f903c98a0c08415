package mentor

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
	plan string
	err  error
	reqs []api.MentorRequest
}

func (b *stubBackend) Notes(context.Context, api.NotesRequest) (string, error) { return "", nil }
func (b *stubBackend) Questions(context.Context, api.QuestionsRequest) (string, error) {
	return "", nil
}
func (b *stubBackend) Quiz(context.Context, api.QuizRequest) ([]quiz.Question, error) {
	return nil, nil
}
func (b *stubBackend) Chat(context.Context, api.ChatRequest) (string, error) { return "", nil }
func (b *stubBackend) Mentor(_ context.Context, req api.MentorRequest) (string, error) {
	b.reqs = append(b.reqs, req)
	return b.plan, b.err
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(b *stubBackend, dir string) *MentorScreen {
	logger := log.New(&bytes.Buffer{})
	return New(submit.New(b, logger), dir, logger)
}

func TestMentor_SendsAllFields(t *testing.T) {
	b := &stubBackend{plan: "Day 1: Alkanes"}
	s := testScreen(b, t.TempDir())
	want := api.MentorRequest{
		Subject: "Organic Chemistry", TotalDays: "14", HoursPerDay: "2",
		Level: "beginner", Notes: "exam on the 20th",
	}
	s.Fill(want)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.Output() != "Creating your study plan with AI..." {
		t.Errorf("Output = %q, want working text", s.Output())
	}
	_, next := s.Update(cmd())

	if len(b.reqs) != 1 || b.reqs[0] != want {
		t.Errorf("reqs = %+v", b.reqs)
	}
	if s.Output() != "Day 1: Alkanes" {
		t.Errorf("Output = %q", s.Output())
	}
	if next == nil {
		t.Fatal("expected dashboard refresh")
	}
	if _, ok := next().(dashboard.RefreshMsg); !ok {
		t.Error("expected RefreshMsg")
	}
}

func TestMentor_TransportError(t *testing.T) {
	b := &stubBackend{err: &api.TransportError{Op: "post", Err: errors.New("refused")}}
	s := testScreen(b, t.TempDir())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	_, next := s.Update(cmd())

	if s.Output() != submit.ContactError {
		t.Errorf("Output = %q", s.Output())
	}
	if next != nil {
		t.Error("errors must not refresh the dashboard")
	}
}

func TestMentor_NumericFieldsRejectLetters(t *testing.T) {
	s := testScreen(&stubBackend{}, t.TempDir())

	s.Update(specialKey(tea.KeyTab))
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	s.Update(tea.KeyPressMsg{Code: '9', Text: "9"})

	if got := s.Request().TotalDays; got != "9" {
		t.Errorf("TotalDays = %q, want 9", got)
	}
}
