// Package submit turns backend calls for the five generation forms into
// display outcomes.
package submit

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/quiz"
)

// ContactError is shown when a request never completed or its response
// could not be read.
const ContactError = "Error contacting server."

// QuizReady is the quiz status text after a successful generation.
const QuizReady = "Quiz ready"

// Kind identifies a form.
type Kind string

const (
	KindNotes     Kind = "notes"
	KindQuiz      Kind = "quiz"
	KindQuestions Kind = "questions"
	KindChat      Kind = "chat"
	KindMentor    Kind = "mentor"
)

// Working returns the status text shown while a request of kind k is
// outstanding.
func (k Kind) Working() string {
	switch k {
	case KindNotes:
		return "Generating notes with AI..."
	case KindQuiz:
		return "Generating quiz with AI..."
	case KindQuestions:
		return "Generating questions with AI..."
	case KindChat:
		return "Thinking..."
	case KindMentor:
		return "Creating your study plan with AI..."
	default:
		return "Working..."
	}
}

// Result is what a form displays once its request settles.
type Result struct {
	Kind Kind
	// Text goes into the form's status or output region.
	Text string
	// Questions is set for a successful quiz generation.
	Questions []quiz.Question
	// OK is true when the backend returned its success field.
	OK bool
}

// RefreshDashboard reports whether the dashboard should be reloaded after
// this result.
func (r Result) RefreshDashboard() bool {
	return r.OK
}

// Backend is the subset of the API the forms use.
type Backend interface {
	Notes(ctx context.Context, req api.NotesRequest) (string, error)
	Questions(ctx context.Context, req api.QuestionsRequest) (string, error)
	Quiz(ctx context.Context, req api.QuizRequest) ([]quiz.Question, error)
	Chat(ctx context.Context, req api.ChatRequest) (string, error)
	Mentor(ctx context.Context, req api.MentorRequest) (string, error)
}

// Submitter runs form requests.
type Submitter struct {
	backend Backend
	logger  *log.Logger
}

// New creates a Submitter. A nil logger discards output.
func New(backend Backend, logger *log.Logger) *Submitter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Submitter{backend: backend, logger: logger.With("component", "submit")}
}

func (s *Submitter) Notes(ctx context.Context, req api.NotesRequest) Result {
	text, err := s.backend.Notes(ctx, req)
	return s.resolve(KindNotes, text, err)
}

func (s *Submitter) Questions(ctx context.Context, req api.QuestionsRequest) Result {
	text, err := s.backend.Questions(ctx, req)
	return s.resolve(KindQuestions, text, err)
}

func (s *Submitter) Chat(ctx context.Context, req api.ChatRequest) Result {
	text, err := s.backend.Chat(ctx, req)
	return s.resolve(KindChat, text, err)
}

func (s *Submitter) Mentor(ctx context.Context, req api.MentorRequest) Result {
	text, err := s.backend.Mentor(ctx, req)
	return s.resolve(KindMentor, text, err)
}

func (s *Submitter) Quiz(ctx context.Context, req api.QuizRequest) Result {
	questions, err := s.backend.Quiz(ctx, req)
	r := s.resolve(KindQuiz, QuizReady, err)
	if r.OK {
		r.Questions = questions
	}
	return r
}

func (s *Submitter) resolve(kind Kind, text string, err error) Result {
	if err == nil {
		return Result{Kind: kind, Text: text, OK: true}
	}

	var appErr *api.AppError
	if errors.As(err, &appErr) {
		s.logger.Info("backend rejected request", "kind", kind, "error", appErr.Message)
		return Result{Kind: kind, Text: appErr.Message}
	}

	s.logger.Error("request failed", "kind", kind, "err", err)
	return Result{Kind: kind, Text: ContactError}
}
