// Package welcome asks for a username on first start.
package welcome

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepgenius/prepgenius/internal/session"
	"github.com/prepgenius/prepgenius/internal/ui/components"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// PromptModel is a one-question program: a banner, a message and a text
// input pre-filled with a default.
type PromptModel struct {
	message  string
	input    components.TextInput
	answered bool
	done     bool
	width    int
	height   int
}

// NewPrompt creates a prompt showing message with def pre-filled.
func NewPrompt(message, def string) *PromptModel {
	input := components.NewTextInput(message, "", false, 64)
	input.SetValue(def)
	input.Model.CursorEnd()
	return &PromptModel{message: message, input: input}
}

func (m *PromptModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.answered = true
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Result returns the entered text and whether it was confirmed.
func (m *PromptModel) Result() (string, bool) {
	return m.input.Value(), m.answered
}

// Done reports whether the prompt was confirmed or cancelled.
func (m *PromptModel) Done() bool {
	return m.done
}

func (m *PromptModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.done {
		return v
	}

	sections := []string{
		RenderBanner(m.width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your AI study companion"),
		"",
		m.input.View(),
		"",
		theme.Hint.Render("enter to continue · esc to skip"),
	}
	content := strings.Join(sections, "\n")

	if m.width == 0 || m.height == 0 {
		v.SetContent(content)
		return v
	}
	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content))
	return v
}

// Prompter runs PromptModel as its own program. It implements
// session.Prompter.
type Prompter struct {
	opts []tea.ProgramOption
}

var _ session.Prompter = (*Prompter)(nil)

// NewPrompter creates a Prompter. opts are passed to every program run.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{opts: opts}
}

// Prompt shows message with def pre-filled and waits for an answer. A
// cancelled prompt returns ok=false with no error.
func (p *Prompter) Prompt(ctx context.Context, message, def string) (string, bool, error) {
	model := NewPrompt(message, def)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrInterrupted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("run username prompt: %w", err)
	}

	pm, ok := final.(*PromptModel)
	if !ok {
		return "", false, nil
	}
	value, answered := pm.Result()
	return value, answered, nil
}
