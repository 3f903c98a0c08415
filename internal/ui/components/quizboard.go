package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepgenius/prepgenius/internal/quiz"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// QuizBoard is the terminal surface a quiz renders into. It implements
// quiz.View and quiz.Selections.
type QuizBoard struct {
	message   string
	groups    []MultiChoice
	submit    *Button
	result    string
	cursor    int
	hasResult bool
}

var (
	_ quiz.View       = (*QuizBoard)(nil)
	_ quiz.Selections = (*QuizBoard)(nil)
)

// NewQuizBoard creates an empty board.
func NewQuizBoard() *QuizBoard {
	return &QuizBoard{}
}

// Clear removes everything previously rendered.
func (b *QuizBoard) Clear() {
	*b = QuizBoard{}
}

// ShowMessage replaces the content with a plain message.
func (b *QuizBoard) ShowMessage(text string) {
	b.message = text
}

// AddQuestion appends a radio group for item.
func (b *QuizBoard) AddQuestion(item quiz.Item) {
	b.groups = append(b.groups, NewMultiChoice(item))
}

// AddSubmit appends the submit control and an empty result region.
func (b *QuizBoard) AddSubmit(label string) {
	btn := NewButton(label)
	b.submit = &btn
	b.hasResult = true
	b.result = ""
}

// SetResult writes text into the result region.
func (b *QuizBoard) SetResult(text string) {
	b.result = text
}

// Selected returns the chosen value for group, if any.
func (b *QuizBoard) Selected(group string) (int, bool) {
	for _, g := range b.groups {
		if g.Item.Group == group {
			return g.Selected()
		}
	}
	return 0, false
}

// Message returns the plain message, if one is shown.
func (b *QuizBoard) Message() string { return b.message }

// Result returns the result region text.
func (b *QuizBoard) Result() string { return b.result }

// HasSubmit reports whether a submit control exists.
func (b *QuizBoard) HasSubmit() bool { return b.submit != nil }

// Inputs returns the number of selectable options on the board.
func (b *QuizBoard) Inputs() int {
	n := 0
	for _, g := range b.groups {
		n += len(g.Item.Options)
	}
	return n
}

// Empty reports whether the board shows nothing at all.
func (b *QuizBoard) Empty() bool {
	return b.message == "" && len(b.groups) == 0 && b.submit == nil
}

// stops is the number of cursor positions: every option plus the submit
// button when present.
func (b *QuizBoard) stops() int {
	n := b.Inputs()
	if b.submit != nil {
		n++
	}
	return n
}

// locate maps the cursor to a (group, option) pair. group is -1 when the
// cursor is on the submit button.
func (b *QuizBoard) locate() (group, option int) {
	c := b.cursor
	for gi, g := range b.groups {
		if c < len(g.Item.Options) {
			return gi, c
		}
		c -= len(g.Item.Options)
	}
	return -1, -1
}

// Update moves the cursor and chooses options. It returns submitted=true
// when the submit button was pressed.
func (b *QuizBoard) Update(msg tea.Msg) (submitted bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || b.stops() == 0 {
		return false
	}

	switch kmsg.String() {
	case "up":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down":
		if b.cursor < b.stops()-1 {
			b.cursor++
		}
	case "space", "enter":
		g, o := b.locate()
		if g < 0 {
			return true
		}
		b.groups[g].Choose(o)
	default:
		if letter := kmsg.String(); len(letter) == 1 {
			b.chooseLetter(strings.ToUpper(letter))
		}
	}
	return false
}

// chooseLetter picks the option with the given letter in the group under
// the cursor.
func (b *QuizBoard) chooseLetter(letter string) {
	g, _ := b.locate()
	if g < 0 {
		return
	}
	for i, opt := range b.groups[g].Item.Options {
		if opt.Letter == letter {
			b.groups[g].Choose(i)
			return
		}
	}
}

// View renders the board.
func (b *QuizBoard) View(width int) string {
	if b.message != "" {
		return theme.Hint.Render(b.message)
	}

	var parts []string
	g, o := b.locate()
	for gi, grp := range b.groups {
		cursor := -1
		if gi == g {
			cursor = o
		}
		parts = append(parts, grp.View(cursor))
	}

	if b.submit != nil {
		btn := *b.submit
		btn.Active = g < 0
		parts = append(parts, btn.View())
	}
	if b.hasResult && b.result != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Width(width).
			Render(b.result))
	}
	return strings.Join(parts, "\n")
}
