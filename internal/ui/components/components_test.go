package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prepgenius/prepgenius/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func twoQuestions() []quiz.Question {
	return []quiz.Question{
		quiz.NewQuestion("2+2?", []string{"3", "4"}, 1),
		quiz.NewQuestion("Capital of France?", []string{"Paris", "Rome"}, 0),
	}
}

func TestQuizBoard_LettersJAndKChooseOptions(t *testing.T) {
	opts := make([]string, 11)
	for i := range opts {
		opts[i] = string(rune('a' + i))
	}
	b := NewQuizBoard()
	quiz.Render(b, []quiz.Question{quiz.NewQuestion("Pick one", opts, 10)})

	b.Update(keyPress('j'))
	if got, ok := b.Selected("q0"); !ok || got != 9 {
		t.Errorf("after j: Selected = %d,%v want 9,true", got, ok)
	}

	b.Update(keyPress('k'))
	if got, ok := b.Selected("q0"); !ok || got != 10 {
		t.Errorf("after k: Selected = %d,%v want 10,true", got, ok)
	}
}

func TestQuizBoard_RenderAndGrade(t *testing.T) {
	b := NewQuizBoard()
	q := quiz.Render(b, twoQuestions())
	if q == nil {
		t.Fatal("expected quiz")
	}
	if b.Inputs() != 4 {
		t.Errorf("Inputs = %d, want 4", b.Inputs())
	}
	if !b.HasSubmit() {
		t.Error("expected submit control")
	}

	// Cursor starts on q0 option A; move to B and choose it.
	b.Update(specialKey(tea.KeyDown))
	b.Update(specialKey(tea.KeySpace))
	// q1: choose B (wrong) by letter.
	b.Update(specialKey(tea.KeyDown))
	b.Update(keyPress('b'))

	if v, ok := b.Selected("q0"); !ok || v != 1 {
		t.Errorf("q0 selected = %d,%v want 1,true", v, ok)
	}
	if v, ok := b.Selected("q1"); !ok || v != 1 {
		t.Errorf("q1 selected = %d,%v want 1,true", v, ok)
	}

	// Move onto the submit button and press enter.
	b.Update(specialKey(tea.KeyDown))
	b.Update(specialKey(tea.KeyDown))
	if !b.Update(specialKey(tea.KeyEnter)) {
		t.Fatal("expected submit on enter over the button")
	}

	q.Submit(b, b)
	if b.Result() != "You scored 1 out of 2." {
		t.Errorf("Result = %q", b.Result())
	}
	if !strings.Contains(b.View(80), "You scored 1 out of 2.") {
		t.Error("expected result in view")
	}
}

func TestQuizBoard_RadioExclusive(t *testing.T) {
	b := NewQuizBoard()
	quiz.Render(b, twoQuestions())

	b.Update(keyPress('a'))
	b.Update(keyPress('b'))

	if v, _ := b.Selected("q0"); v != 1 {
		t.Errorf("expected later choice to replace earlier, got %d", v)
	}
	if _, ok := b.Selected("q1"); ok {
		t.Error("choosing in q0 must not touch q1")
	}
	if strings.Count(b.View(80), "(•)") != 1 {
		t.Error("expected exactly one chosen marker")
	}
}

func TestQuizBoard_UnansweredCountsWrong(t *testing.T) {
	b := NewQuizBoard()
	q := quiz.Render(b, twoQuestions())

	score := q.Submit(b, b)
	if score.Correct != 0 || score.Total != 2 {
		t.Errorf("score = %+v", score)
	}
}

func TestQuizBoard_Empty(t *testing.T) {
	b := NewQuizBoard()
	q := quiz.Render(b, nil)

	if q != nil {
		t.Error("expected nil quiz for empty list")
	}
	if b.HasSubmit() || b.Inputs() != 0 {
		t.Error("empty quiz must have no submit control and no inputs")
	}
	if b.Message() != quiz.EmptyMessage {
		t.Errorf("Message = %q", b.Message())
	}
	if b.Update(specialKey(tea.KeyEnter)) {
		t.Error("enter on empty board must not submit")
	}
}

func TestQuizBoard_ViewHidesAnswers(t *testing.T) {
	a := NewQuizBoard()
	quiz.Render(a, []quiz.Question{quiz.NewQuestion("Q", []string{"x", "y"}, 0)})
	b := NewQuizBoard()
	quiz.Render(b, []quiz.Question{quiz.NewQuestion("Q", []string{"x", "y"}, 1)})

	if a.View(80) != b.View(80) {
		t.Error("rendering must not depend on the answer key")
	}
}

func TestQuizBoard_ClearResets(t *testing.T) {
	b := NewQuizBoard()
	quiz.Render(b, twoQuestions())
	b.Clear()

	if !b.Empty() {
		t.Error("expected empty board after Clear")
	}
}

func TestTextInput_NumericPasteKeepsDigits(t *testing.T) {
	in := NewTextInput("Count", "", true, 4)
	in.Focus()

	in, _ = in.Update(tea.PasteMsg{Content: "1a2 "})

	if got := in.Value(); got != "12" {
		t.Errorf("Value = %q, want 12", got)
	}
}

func TestForm_FocusAndSubmit(t *testing.T) {
	f := NewForm("Go",
		NewTextInput("Subject", "", false, 0),
		NewTextInput("Days", "", true, 3),
	)

	f, _, _ = f.Update(keyPress('m'))
	f, _, _ = f.Update(specialKey(tea.KeyTab))
	f, _, _ = f.Update(keyPress('x'))
	f, _, _ = f.Update(keyPress('7'))

	if f.Value(0) != "m" {
		t.Errorf("field 0 = %q", f.Value(0))
	}
	if f.Value(1) != "7" {
		t.Errorf("numeric field = %q, want 7", f.Value(1))
	}

	f, _, _ = f.Update(specialKey(tea.KeyTab))
	if !f.Submit.Active {
		t.Error("expected submit button focused")
	}
	f, _, _ = f.Update(specialKey(tea.KeyTab))
	if f.Focused() != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", f.Focused())
	}

	_, _, submitted := f.Update(specialKey(tea.KeyEnter))
	if !submitted {
		t.Error("expected enter to submit")
	}
}

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.pct, false, 20)
		if got := p.Filled(20); got != tt.want {
			t.Errorf("Filled(%d%%) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestOutput_KeepsRawText(t *testing.T) {
	var o Output
	o.SetContent("# Notes\n\n- one")

	if o.Text() != "# Notes\n\n- one" {
		t.Errorf("Text = %q", o.Text())
	}
	if o.View(60) == "" {
		t.Error("expected rendered markdown")
	}

	o.SetStatus("Thinking...")
	if !strings.Contains(o.View(60), "Thinking...") {
		t.Error("expected status text in view")
	}
}
