package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prepgenius/prepgenius/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestPrompt_DefaultAccepted(t *testing.T) {
	m := NewPrompt(session.PromptMessage, session.PromptDefault)
	m.Init()

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	value, ok := m.Result()
	if !ok || value != session.PromptDefault {
		t.Errorf("Result = %q,%v want %q,true", value, ok, session.PromptDefault)
	}
	if !m.Done() {
		t.Error("expected prompt done")
	}
}

func TestPrompt_TypedValue(t *testing.T) {
	m := NewPrompt(session.PromptMessage, "")
	m.Init()

	for _, r := range "ada" {
		m.Update(keyPress(r))
	}
	m.Update(specialKey(tea.KeyEnter))

	if value, ok := m.Result(); !ok || value != "ada" {
		t.Errorf("Result = %q,%v want ada,true", value, ok)
	}
}

func TestPrompt_Cancelled(t *testing.T) {
	m := NewPrompt(session.PromptMessage, session.PromptDefault)
	m.Init()

	m.Update(specialKey(tea.KeyEscape))

	if _, ok := m.Result(); ok {
		t.Error("expected cancelled prompt")
	}
	if !m.Done() {
		t.Error("expected prompt done")
	}
}

func TestPrompt_View(t *testing.T) {
	m := NewPrompt(session.PromptMessage, session.PromptDefault)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
	if !strings.Contains(RenderBanner(100), "|_|") {
		t.Error("expected full banner at width 100")
	}
	if RenderBanner(40) == RenderBanner(100) {
		t.Error("expected compact banner on narrow terminals")
	}
}
