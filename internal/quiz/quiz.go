// Package quiz renders multiple-choice questions through a View and grades
// the selections made against them.
package quiz

import "fmt"

const (
	// EmptyMessage is shown instead of a quiz when no questions came back.
	EmptyMessage = "No questions generated."

	// SubmitLabel is the label of the grading control.
	SubmitLabel = "Submit Quiz"
)

// Question is a single multiple-choice prompt. The answer index is kept
// unexported so that nothing outside grading can read it.
type Question struct {
	Prompt  string
	Options []string
	answer  int
}

// NewQuestion creates a question with its answer key.
func NewQuestion(prompt string, options []string, answerIndex int) Question {
	return Question{
		Prompt:  prompt,
		Options: options,
		answer:  answerIndex,
	}
}

// Option is one selectable answer as handed to a View.
type Option struct {
	Letter string
	Text   string
	Value  int
}

// Item is the renderable form of a Question. It carries no answer key.
type Item struct {
	Group   string
	Number  int
	Prompt  string
	Options []Option
}

// View is the surface a quiz renders into.
type View interface {
	// Clear removes everything previously rendered.
	Clear()

	// ShowMessage replaces the content with a plain message.
	ShowMessage(text string)

	// AddQuestion appends one question with its mutually exclusive options.
	AddQuestion(item Item)

	// AddSubmit appends the submit control followed by an empty result region.
	AddSubmit(label string)

	// SetResult writes text into the result region.
	SetResult(text string)
}

// Selections reports the current selection for a question group.
type Selections interface {
	Selected(group string) (value int, ok bool)
}

// Score is the outcome of grading.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	return fmt.Sprintf("You scored %d out of %d.", s.Correct, s.Total)
}

// Quiz holds the questions of a rendered quiz for later grading.
type Quiz struct {
	questions []Question
}

// Letter returns the option label at offset i from 'A'.
func Letter(i int) string {
	return string(rune('A' + i))
}

// GroupName returns the control group name for question i.
func GroupName(i int) string {
	return fmt.Sprintf("q%d", i)
}

// Render draws questions into v. It returns nil when there is nothing to
// grade, in which case no controls were added.
func Render(v View, questions []Question) *Quiz {
	v.Clear()

	if len(questions) == 0 {
		v.ShowMessage(EmptyMessage)
		return nil
	}

	for i, q := range questions {
		item := Item{
			Group:   GroupName(i),
			Number:  i + 1,
			Prompt:  q.Prompt,
			Options: make([]Option, len(q.Options)),
		}
		for j, opt := range q.Options {
			item.Options[j] = Option{Letter: Letter(j), Text: opt, Value: j}
		}
		v.AddQuestion(item)
	}
	v.AddSubmit(SubmitLabel)

	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Quiz{questions: qs}
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.questions)
}

// Grade counts exact matches between sel and the answer key.
// Unanswered questions count as incorrect.
func (q *Quiz) Grade(sel Selections) Score {
	score := Score{Total: len(q.questions)}
	for i, question := range q.questions {
		chosen, ok := sel.Selected(GroupName(i))
		if !ok {
			continue
		}
		if chosen == question.answer {
			score.Correct++
		}
	}
	return score
}

// Submit grades the current selections and writes the result into v.
func (q *Quiz) Submit(v View, sel Selections) Score {
	score := q.Grade(sel)
	v.SetResult(score.String())
	return score
}
