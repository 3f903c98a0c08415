package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form is a column of text inputs followed by a submit button. Focus moves
// with tab / shift+tab; enter submits from anywhere in the form.
type Form struct {
	Fields []TextInput
	Submit Button
	focus  int
}

// NewForm creates a form with the first field focused.
func NewForm(submitLabel string, fields ...TextInput) Form {
	f := Form{Fields: fields, Submit: NewButton(submitLabel)}
	f.applyFocus()
	return f
}

// Init returns the cursor command of the focused field.
func (f Form) Init() tea.Cmd {
	if f.focus < len(f.Fields) {
		return f.Fields[f.focus].Focus()
	}
	return nil
}

// Update handles focus movement and forwards other keys to the focused
// field. submitted is true when enter was pressed.
func (f Form) Update(msg tea.Msg) (form Form, cmd tea.Cmd, submitted bool) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			f.focus = (f.focus + 1) % (len(f.Fields) + 1)
			return f, f.applyFocus(), false
		case "shift+tab", "up":
			f.focus--
			if f.focus < 0 {
				f.focus = len(f.Fields)
			}
			return f, f.applyFocus(), false
		case "enter":
			return f, nil, true
		}
		if f.focus < len(f.Fields) {
			f.Fields[f.focus], cmd = f.Fields[f.focus].Update(msg)
		}
		return f, cmd, false
	}

	// Non-key messages such as cursor blinks go to every field.
	cmds := make([]tea.Cmd, 0, len(f.Fields))
	for i := range f.Fields {
		f.Fields[i], cmd = f.Fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return f, tea.Batch(cmds...), false
}

func (f *Form) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.Fields {
		if i == f.focus {
			cmd = f.Fields[i].Focus()
		} else {
			f.Fields[i].Blur()
		}
	}
	f.Submit.Active = f.focus == len(f.Fields)
	return cmd
}

// Value returns the raw value of field i.
func (f Form) Value(i int) string {
	return f.Fields[i].Value()
}

// TrimmedValue returns the trimmed value of field i.
func (f Form) TrimmedValue(i int) string {
	return f.Fields[i].TrimmedValue()
}

// SetValue replaces the value of field i.
func (f *Form) SetValue(i int, v string) {
	f.Fields[i].SetValue(v)
}

// Focused returns the index of the focused field, or len(Fields) when the
// submit button has focus.
func (f Form) Focused() int {
	return f.focus
}

// View renders the fields and the submit button.
func (f Form) View() string {
	parts := make([]string, 0, len(f.Fields)+1)
	for _, fld := range f.Fields {
		parts = append(parts, fld.View())
	}
	parts = append(parts, f.Submit.View())
	return strings.Join(parts, "\n\n")
}
