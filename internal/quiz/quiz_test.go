package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingView captures what a quiz renders.
type recordingView struct {
	cleared int
	message string
	items   []Item
	submit  string
	result  string
	hasSlot bool
}

func (v *recordingView) Clear() {
	v.cleared++
	v.message = ""
	v.items = nil
	v.submit = ""
	v.result = ""
	v.hasSlot = false
}
func (v *recordingView) ShowMessage(text string) { v.message = text }
func (v *recordingView) AddQuestion(item Item)   { v.items = append(v.items, item) }
func (v *recordingView) AddSubmit(label string) {
	v.submit = label
	v.hasSlot = true
}
func (v *recordingView) SetResult(text string) { v.result = text }

type mapSelections map[string]int

func (m mapSelections) Selected(group string) (int, bool) {
	v, ok := m[group]
	return v, ok
}

func sampleQuestions() []Question {
	return []Question{
		NewQuestion("What is the capital of France?", []string{"Berlin", "Paris", "Rome"}, 1),
		NewQuestion("2 + 2 = ?", []string{"3", "4", "5", "22"}, 1),
	}
}

func TestRender_Questions(t *testing.T) {
	v := &recordingView{}
	q := Render(v, sampleQuestions())
	require.NotNil(t, q)

	require.Len(t, v.items, 2)
	assert.Equal(t, "q0", v.items[0].Group)
	assert.Equal(t, 1, v.items[0].Number)
	assert.Equal(t, "What is the capital of France?", v.items[0].Prompt)
	assert.Equal(t, []Option{
		{Letter: "A", Text: "Berlin", Value: 0},
		{Letter: "B", Text: "Paris", Value: 1},
		{Letter: "C", Text: "Rome", Value: 2},
	}, v.items[0].Options)

	assert.Equal(t, "q1", v.items[1].Group)
	assert.Equal(t, 2, v.items[1].Number)
	assert.Equal(t, "D", v.items[1].Options[3].Letter)

	assert.Equal(t, SubmitLabel, v.submit)
	assert.True(t, v.hasSlot)
	assert.Empty(t, v.result)
}

func TestRender_EmptyHasNoControls(t *testing.T) {
	v := &recordingView{}
	q := Render(v, nil)

	assert.Nil(t, q)
	assert.Equal(t, EmptyMessage, v.message)
	assert.Empty(t, v.items)
	assert.Empty(t, v.submit)
	assert.False(t, v.hasSlot)
}

func TestRender_ClearsPreviousQuiz(t *testing.T) {
	v := &recordingView{}
	Render(v, sampleQuestions())
	Render(v, sampleQuestions()[:1])

	assert.Equal(t, 2, v.cleared)
	assert.Len(t, v.items, 1)
}

func TestRender_DoesNotExposeAnswer(t *testing.T) {
	opts := []string{"x", "y", "z"}

	first := &recordingView{}
	Render(first, []Question{NewQuestion("Pick", opts, 0)})
	second := &recordingView{}
	Render(second, []Question{NewQuestion("Pick", opts, 2)})

	// Questions differing only in their answer key must render identically.
	assert.Equal(t, first.items, second.items)
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name string
		sel  mapSelections
		want Score
	}{
		{"none answered", mapSelections{}, Score{Correct: 0, Total: 2}},
		{"all correct", mapSelections{"q0": 1, "q1": 1}, Score{Correct: 2, Total: 2}},
		{"first right second wrong", mapSelections{"q0": 1, "q1": 0}, Score{Correct: 1, Total: 2}},
		{"one unanswered", mapSelections{"q1": 1}, Score{Correct: 1, Total: 2}},
		{"out of range value", mapSelections{"q0": 7, "q1": -1}, Score{Correct: 0, Total: 2}},
		{"unrelated group ignored", mapSelections{"q9": 1}, Score{Correct: 0, Total: 2}},
	}

	v := &recordingView{}
	q := Render(v, sampleQuestions())
	require.NotNil(t, q)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Grade(tt.sel))
		})
	}
}

func TestSubmit_ResultText(t *testing.T) {
	v := &recordingView{}
	q := Render(v, sampleQuestions())
	require.NotNil(t, q)

	score := q.Submit(v, mapSelections{"q0": 1, "q1": 2})
	assert.Equal(t, 1, score.Correct)
	assert.Equal(t, "You scored 1 out of 2.", v.result)
}

func TestSubmit_RegradesCurrentSelections(t *testing.T) {
	v := &recordingView{}
	q := Render(v, sampleQuestions())
	require.NotNil(t, q)

	sel := mapSelections{"q0": 0}
	q.Submit(v, sel)
	assert.Equal(t, "You scored 0 out of 2.", v.result)

	sel["q0"] = 1
	sel["q1"] = 1
	q.Submit(v, sel)
	assert.Equal(t, "You scored 2 out of 2.", v.result)
}

func TestRender_CopiesQuestions(t *testing.T) {
	qs := sampleQuestions()
	v := &recordingView{}
	q := Render(v, qs)

	qs[0] = NewQuestion("changed", nil, 0)
	assert.Equal(t, 1, q.Grade(mapSelections{"q0": 1}).Correct)
}

func TestLetter(t *testing.T) {
	assert.Equal(t, "A", Letter(0))
	assert.Equal(t, "B", Letter(1))
	assert.Equal(t, "E", Letter(4))
}
