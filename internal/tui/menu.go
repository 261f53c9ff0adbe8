package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bus-schedule/internal/session"
	"github.com/MKhiriev/go-bus-schedule/models"
)

type menuItem struct {
	label  string
	target screen
}

type menuModel struct {
	items   []menuItem
	idx     int
	who     string
	expires string
}

// newMenuModel builds the menu for the signed-in role. Only administrators
// see the dashboard and the user list.
func newMenuModel(sess *session.Store) menuModel {
	var items []menuItem
	if sess.IsAdmin() {
		items = append(items, menuItem{label: "Dashboard", target: screenDashboard})
	}
	items = append(items,
		menuItem{label: "Buses", target: screenBuses},
		menuItem{label: "Schedules", target: screenSchedules},
	)
	if sess.IsAdmin() {
		items = append(items, menuItem{label: "Users", target: screenUsers})
	}

	m := menuModel{items: items}
	if user, ok := sess.CurrentUser(); ok {
		m.who = fmt.Sprintf("%s, %s", user.String(), user.Role)
	}
	if exp, ok := sess.ExpiresAt(); ok {
		m.expires = exp.Local().Format(models.DisplayDateTimeLayout)
	}
	return m
}

// refreshed rebuilds the menu from sess and keeps the cursor in range.
func (m menuModel) refreshed(sess *session.Store) menuModel {
	next := newMenuModel(sess)
	next.idx = moveCursor(m.idx, 0, len(next.items))
	return next
}

func (m menuModel) View() string {
	var b strings.Builder
	if m.who != "" {
		b.WriteString("Signed in as " + m.who + "\n")
		if m.expires != "" {
			b.WriteString("Session expires " + m.expires + "\n")
		}
		b.WriteString("\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item.label + "\n")
	}
	return renderPage("MENU", strings.TrimRight(b.String(), "\n"), "↑/↓: choose  enter: open  r: refresh  L: sign out  v: version  q: quit")
}
