package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is either a free text input or, when options is set, a choice
// switched with left/right.
type formField struct {
	label   string
	input   textinput.Model
	options []string
	choice  int
}

type formModel struct {
	title      string
	fields     []formField
	focus      int
	submitting bool
	spinner    spinner.Model
}

func textField(label, placeholder string, limit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return formField{label: label, input: in}
}

func secretField(label string) formField {
	f := textField(label, "", 64)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func choiceField(label string, options ...string) formField {
	return formField{label: label, input: textinput.New(), options: options}
}

func newFormModel(title string, fields ...formField) formModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := formModel{title: title, fields: fields, spinner: sp}
	m.fields[0].input.Focus()
	return m
}

// value returns the text of field i, trimmed, or the selected option.
func (m formModel) value(i int) string {
	f := m.fields[i]
	if len(f.options) > 0 {
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

// secret returns field i as typed.
func (m formModel) secret(i int) string {
	return m.fields[i].input.Value()
}

func (m formModel) focusNext() formModel {
	return m.focusTo((m.focus + 1) % len(m.fields))
}

func (m formModel) focusPrev() formModel {
	return m.focusTo((m.focus - 1 + len(m.fields)) % len(m.fields))
}

func (m formModel) focusTo(idx int) formModel {
	m.fields[m.focus].input.Blur()
	m.focus = idx
	m.fields[m.focus].input.Focus()
	return m
}

func (m formModel) reset() formModel {
	for i := range m.fields {
		m.fields[i].input.SetValue("")
		m.fields[i].choice = 0
	}
	m.submitting = false
	return m.focusTo(0)
}

// update feeds msg to the focused field.
func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	f := &m.fields[m.focus]
	if len(f.options) > 0 {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, keys.left):
				f.choice = (f.choice - 1 + len(f.options)) % len(f.options)
			case key.Matches(keyMsg, keys.right):
				f.choice = (f.choice + 1) % len(f.options)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m formModel) View(hotKeys string) string {
	var b strings.Builder
	for i, f := range m.fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(f.label)
		b.WriteString(": ")
		if len(f.options) > 0 {
			b.WriteString("‹ " + f.options[f.choice] + " ›")
		} else {
			b.WriteString(f.input.View())
		}
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " please wait...")
	}
	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
