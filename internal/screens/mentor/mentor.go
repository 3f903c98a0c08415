// Package mentor is the study plan panel.
package mentor

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

// ExportFilename is the file the plan is downloaded to.
const ExportFilename = "study-plan.txt"

const (
	fieldSubject = iota
	fieldTotalDays
	fieldHoursPerDay
	fieldLevel
	fieldNotes
)

type planMsg struct {
	result submit.Result
}

// MentorScreen collects a study goal and shows the generated plan.
type MentorScreen struct {
	submitter *submit.Submitter
	form      components.Form
	output    *panel.Output
}

var _ screen.Screen = (*MentorScreen)(nil)
var _ screen.KeyHintProvider = (*MentorScreen)(nil)

// New creates a new MentorScreen.
func New(submitter *submit.Submitter, exportDir string, logger *log.Logger) *MentorScreen {
	return &MentorScreen{
		submitter: submitter,
		form: components.NewForm("Create Plan",
			components.NewTextInput("Subject", "e.g. Organic Chemistry", false, 0),
			components.NewTextInput("Total days", "14", true, 4),
			components.NewTextInput("Hours per day", "2", true, 2),
			components.NewTextInput("Level", "beginner / intermediate", false, 0),
			components.NewTextInput("Notes (optional)", "exam date, weak topics...", false, 0),
		),
		output: panel.NewOutput(exportDir, ExportFilename, logger.With("component", "mentor")),
	}
}

func (s *MentorScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *MentorScreen) Title() string {
	return "Study Mentor"
}

func (s *MentorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create plan"},
		panel.ExportHint,
		{Key: "Ctrl+N/P", Description: "Next/Prev page"},
	}
}

// Output returns the raw output text.
func (s *MentorScreen) Output() string {
	return s.output.Text()
}

// Fill sets every field from req.
func (s *MentorScreen) Fill(req api.MentorRequest) {
	s.form.SetValue(fieldSubject, req.Subject)
	s.form.SetValue(fieldTotalDays, req.TotalDays)
	s.form.SetValue(fieldHoursPerDay, req.HoursPerDay)
	s.form.SetValue(fieldLevel, req.Level)
	s.form.SetValue(fieldNotes, req.Notes)
}

// Request returns the request built from the current field values.
func (s *MentorScreen) Request() api.MentorRequest {
	return api.MentorRequest{
		Subject:     s.form.Value(fieldSubject),
		TotalDays:   s.form.Value(fieldTotalDays),
		HoursPerDay: s.form.Value(fieldHoursPerDay),
		Level:       s.form.Value(fieldLevel),
		Notes:       s.form.Value(fieldNotes),
	}
}

// Submit shows the working text and starts the request.
func (s *MentorScreen) Submit() tea.Cmd {
	s.output.ClearNotice()
	s.output.SetStatus(submit.KindMentor.Working())

	sub := s.submitter
	req := s.Request()
	return func() tea.Msg {
		return planMsg{result: sub.Mentor(context.Background(), req)}
	}
}

func (s *MentorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
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

func (s *MentorScreen) View(width, height int) string {
	cw := max(width-4, 20)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Study Mentor"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Tell us your goal and get a day-by-day plan."))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Width(cw).Render(s.output.View(cw - 4)))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}
