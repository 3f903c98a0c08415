// Package chat is the tutor chat panel.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/screen"
	"github.com/prepgenius/prepgenius/internal/screens/dashboard"
	"github.com/prepgenius/prepgenius/internal/screens/panel"
	"github.com/prepgenius/prepgenius/internal/submit"
	"github.com/prepgenius/prepgenius/internal/ui/components"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// ExportFilename is the file the answer is downloaded to.
const ExportFilename = "chat.txt"

type answerMsg struct {
	result submit.Result
}

// ChatScreen sends one question at a time and shows the tutor's answer.
type ChatScreen struct {
	submitter *submit.Submitter
	form      components.Form
	output    *panel.Output
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a new ChatScreen.
func New(submitter *submit.Submitter, exportDir string, logger *log.Logger) *ChatScreen {
	return &ChatScreen{
		submitter: submitter,
		form: components.NewForm("Ask",
			components.NewTextInput("Your question", "e.g. What is the difference between mitosis and meiosis?", false, 0),
		),
		output: panel.NewOutput(exportDir, ExportFilename, logger.With("component", "chat")),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *ChatScreen) Title() string {
	return "AI Tutor Chat"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		panel.ExportHint,
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Question returns the current input text.
func (s *ChatScreen) Question() string {
	return s.form.Value(0)
}

// SetQuestion replaces the input text.
func (s *ChatScreen) SetQuestion(q string) {
	s.form.SetValue(0, q)
}

// Output returns the raw output text.
func (s *ChatScreen) Output() string {
	return s.output.Text()
}

// Ask sends the trimmed question. A blank question does nothing.
func (s *ChatScreen) Ask() tea.Cmd {
	question := s.form.TrimmedValue(0)
	if question == "" {
		return nil
	}
	s.output.ClearNotice()
	s.output.SetStatus(submit.KindChat.Working())

	sub := s.submitter
	return func() tea.Msg {
		return answerMsg{result: sub.Chat(context.Background(), api.ChatRequest{Question: question})}
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		if !msg.result.OK {
			s.output.SetStatus(msg.result.Text)
			return s, nil
		}
		s.output.SetContent(msg.result.Text)
		s.form.SetValue(0, "")
		return s, dashboard.Refresh

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			s.output.Export()
			return s, nil
		}
		form, cmd, submitted := s.form.Update(msg)
		s.form = form
		if submitted {
			return s, s.Ask()
		}
		return s, cmd
	}

	form, cmd, _ := s.form.Update(msg)
	s.form = form
	return s, cmd
}

func (s *ChatScreen) View(width, height int) string {
	cw := max(width-4, 20)

	var b strings.Builder
	b.WriteString(theme.Title.Render("AI Tutor Chat"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Ask a study question and get a clear answer."))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Width(cw).Render(s.output.View(cw - 4)))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
