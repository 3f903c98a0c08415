// Package docform is the document upload form used by the notes and
// question bank panels.
package docform

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

const (
	fieldFile = iota
	fieldPrompt
)

type resultMsg struct {
	kind   submit.Kind
	result submit.Result
}

// Config describes one document form.
type Config struct {
	Kind        submit.Kind
	Title       string
	Intro       string
	SubmitLabel string
	Filename    string
	ExportDir   string
}

// NotesConfig is the configuration of the notes panel.
func NotesConfig(exportDir string) Config {
	return Config{
		Kind:        submit.KindNotes,
		Title:       "Smart Notes",
		Intro:       "Upload a PDF and get structured study notes.",
		SubmitLabel: "Generate Notes",
		Filename:    "notes.txt",
		ExportDir:   exportDir,
	}
}

// QuestionsConfig is the configuration of the question bank panel.
func QuestionsConfig(exportDir string) Config {
	return Config{
		Kind:        submit.KindQuestions,
		Title:       "Question Bank",
		Intro:       "Upload a PDF and get exam-style questions.",
		SubmitLabel: "Generate Questions",
		Filename:    "questions.txt",
		ExportDir:   exportDir,
	}
}

// FormScreen uploads a document with optional instructions and shows the
// generated text.
type FormScreen struct {
	cfg       Config
	submitter *submit.Submitter
	form      components.Form
	output    *panel.Output
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a document form screen.
func New(cfg Config, submitter *submit.Submitter, logger *log.Logger) *FormScreen {
	return &FormScreen{
		cfg:       cfg,
		submitter: submitter,
		form: components.NewForm(cfg.SubmitLabel,
			components.NewTextInput("PDF file", "path/to/chapter.pdf", false, 0),
			components.NewTextInput("Instructions (optional)", "e.g. focus on definitions", false, 0),
		),
		output: panel.NewOutput(cfg.ExportDir, cfg.Filename, logger.With("component", string(cfg.Kind))),
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *FormScreen) Title() string {
	return s.cfg.Title
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Generate"},
		panel.ExportHint,
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
	}
}

// Output returns the raw output text.
func (s *FormScreen) Output() string {
	return s.output.Text()
}

// File returns the file path field.
func (s *FormScreen) File() string {
	return s.form.Value(fieldFile)
}

// SetFile sets the file path field.
func (s *FormScreen) SetFile(path string) {
	s.form.SetValue(fieldFile, path)
}

// SetPrompt sets the instructions field.
func (s *FormScreen) SetPrompt(prompt string) {
	s.form.SetValue(fieldPrompt, prompt)
}

// Submit shows the working text and starts the request.
func (s *FormScreen) Submit() tea.Cmd {
	s.output.ClearNotice()
	s.output.SetStatus(s.cfg.Kind.Working())

	kind := s.cfg.Kind
	sub := s.submitter
	file := s.form.TrimmedValue(fieldFile)
	prompt := s.form.Value(fieldPrompt)
	return func() tea.Msg {
		ctx := context.Background()
		var r submit.Result
		switch kind {
		case submit.KindQuestions:
			r = sub.Questions(ctx, api.QuestionsRequest{FilePath: file, Prompt: prompt})
		default:
			r = sub.Notes(ctx, api.NotesRequest{FilePath: file, Prompt: prompt})
		}
		return resultMsg{kind: kind, result: r}
	}
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.kind != s.cfg.Kind {
			return s, nil
		}
		if !msg.result.OK {
			s.output.SetStatus(msg.result.Text)
			return s, nil
		}
		s.output.SetContent(msg.result.Text)
		return s, dashboard.Refresh

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			s.output.Export()
			return s, nil
		}
		form, cmd, submitted := s.form.Update(msg)
		s.form = form
		if submitted {
			return s, s.Submit()
		}
		return s, cmd
	}

	form, cmd, _ := s.form.Update(msg)
	s.form = form
	return s, cmd
}

func (s *FormScreen) View(width, height int) string {
	cw := max(width-4, 20)

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.cfg.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.cfg.Intro))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Width(cw).Render(s.output.View(cw - 4)))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
