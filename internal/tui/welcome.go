package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create account"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Bus fleet and trip schedules\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	return renderPage("BUS SCHEDULE", strings.TrimRight(b.String(), "\n"), "↑/↓: choose  enter: open  v: version  q: quit")
}
