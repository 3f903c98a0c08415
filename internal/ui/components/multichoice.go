package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepgenius/prepgenius/internal/quiz"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// MultiChoice is a radio group: at most one option is chosen at a time.
// It knows nothing about which option is correct.
type MultiChoice struct {
	Item   quiz.Item
	chosen int
}

// NewMultiChoice creates a radio group with nothing chosen.
func NewMultiChoice(item quiz.Item) MultiChoice {
	return MultiChoice{Item: item, chosen: -1}
}

// Choose selects option i, replacing any previous choice.
func (m *MultiChoice) Choose(i int) {
	if i < 0 || i >= len(m.Item.Options) {
		return
	}
	m.chosen = i
}

// Selected returns the value of the chosen option.
func (m MultiChoice) Selected() (int, bool) {
	if m.chosen < 0 {
		return 0, false
	}
	return m.Item.Options[m.chosen].Value, true
}

// View renders the group. cursor is the option under the cursor, or -1.
func (m MultiChoice) View(cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d. %s", m.Item.Number, m.Item.Prompt)))
	b.WriteString("\n")

	for i, opt := range m.Item.Options {
		prefix := "  "
		if i == cursor {
			prefix = "▸ "
		}
		radio := "( )"
		if i == m.chosen {
			radio = "(•)"
		}
		line := fmt.Sprintf("%s%s %s. %s", prefix, radio, opt.Letter, opt.Text)

		switch {
		case i == cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == m.chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
