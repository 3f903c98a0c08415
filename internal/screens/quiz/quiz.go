// Package quiz is the quiz generator panel: a document form above an
// interactive multiple-choice quiz.
package quiz

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepgenius/prepgenius/internal/api"
	qz "github.com/prepgenius/prepgenius/internal/quiz"
	"github.com/prepgenius/prepgenius/internal/screen"
	"github.com/prepgenius/prepgenius/internal/screens/dashboard"
	"github.com/prepgenius/prepgenius/internal/submit"
	"github.com/prepgenius/prepgenius/internal/ui/components"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

const (
	fieldFile = iota
	fieldCount
)

// DefaultQuestionCount pre-fills the number of questions.
const DefaultQuestionCount = "5"

type quizResultMsg struct {
	result submit.Result
}

// QuizScreen generates a quiz from a document and grades it.
type QuizScreen struct {
	submitter *submit.Submitter
	form      components.Form
	board     *components.QuizBoard
	current   *qz.Quiz
	status    string
	onBoard   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(submitter *submit.Submitter) *QuizScreen {
	s := &QuizScreen{
		submitter: submitter,
		form: components.NewForm("Generate Quiz",
			components.NewTextInput("PDF file", "path/to/chapter.pdf", false, 0),
			components.NewTextInput("Number of questions", "5", true, 3),
		),
		board: components.NewQuizBoard(),
	}
	s.form.SetValue(fieldCount, DefaultQuestionCount)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz Generator"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.onBoard {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Space/A-D", Description: "Choose"},
			{Key: "Enter", Description: "Choose/Submit"},
			{Key: "Ctrl+T", Description: "Form"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Ctrl+T", Description: "Quiz"},
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
	}
}

// Status returns the generation status text.
func (s *QuizScreen) Status() string {
	return s.status
}

// Board returns the quiz surface.
func (s *QuizScreen) Board() *components.QuizBoard {
	return s.board
}

// SetFile sets the file path field.
func (s *QuizScreen) SetFile(path string) {
	s.form.SetValue(fieldFile, path)
}

// SetCount sets the number of questions field.
func (s *QuizScreen) SetCount(n string) {
	s.form.SetValue(fieldCount, n)
}

// Generate clears the current quiz, shows the working text and starts the
// request.
func (s *QuizScreen) Generate() tea.Cmd {
	s.status = submit.KindQuiz.Working()
	s.board.Clear()
	s.current = nil
	s.onBoard = false

	sub := s.submitter
	req := api.QuizRequest{
		FilePath:     s.form.TrimmedValue(fieldFile),
		NumQuestions: s.form.TrimmedValue(fieldCount),
	}
	return func() tea.Msg {
		return quizResultMsg{result: sub.Quiz(context.Background(), req)}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizResultMsg:
		s.status = msg.result.Text
		if !msg.result.OK {
			s.board.Clear()
			return s, nil
		}
		s.current = qz.Render(s.board, msg.result.Questions)
		s.onBoard = s.current != nil
		return s, dashboard.Refresh

	case tea.KeyMsg:
		if msg.String() == "ctrl+t" {
			s.onBoard = !s.onBoard && s.current != nil
			return s, nil
		}
		if s.onBoard {
			if s.board.Update(msg) && s.current != nil {
				s.current.Submit(s.board, s.board)
			}
			return s, nil
		}
		form, cmd, submitted := s.form.Update(msg)
		s.form = form
		if submitted {
			return s, s.Generate()
		}
		return s, cmd
	}

	form, cmd, _ := s.form.Update(msg)
	s.form = form
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	cw := max(width-4, 20)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz Generator"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Upload a PDF and take a multiple-choice quiz."))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	if s.status != "" {
		b.WriteString(theme.Status.Render(s.status))
		b.WriteString("\n\n")
	}
	if !s.board.Empty() {
		card := theme.Card
		if s.onBoard {
			card = theme.FocusedCard
		}
		b.WriteString(card.Width(cw).Render(s.board.View(cw - 4)))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
