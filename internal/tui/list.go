package tui

import (
	"strings"

	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// listModel is a searchable table of T. Rows are kept as loaded; the cursor
// indexes the rows that pass the search.
type listModel[T any] struct {
	title   string
	headers []string
	row     func(T) []string
	match   func(T, string) bool

	items     []T
	idx       int
	loading   bool
	status    string
	searching bool
	search    textinput.Model
}

func newListModel[T any](title string, headers []string, row func(T) []string, match func(T, string) bool) listModel[T] {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Prompt = "/ "

	return listModel[T]{
		title:   title,
		headers: headers,
		row:     row,
		match:   match,
		search:  search,
	}
}

func (m listModel[T]) visible() []T {
	q := strings.TrimSpace(m.search.Value())
	if q == "" {
		return m.items
	}
	out := make([]T, 0, len(m.items))
	for _, it := range m.items {
		if m.match(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// selected returns the row under the cursor.
func (m listModel[T]) selected() (T, bool) {
	rows := m.visible()
	if m.idx < 0 || m.idx >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[m.idx], true
}

func (m listModel[T]) withItems(items []T) listModel[T] {
	m.items = items
	m.loading = false
	m.idx = moveCursor(m.idx, 0, len(m.visible()))
	return m
}

func (m listModel[T]) move(delta int) listModel[T] {
	m.idx = moveCursor(m.idx, delta, len(m.visible()))
	return m
}

func (m listModel[T]) View(hotKeys string) string {
	var b strings.Builder
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n\n")
	}

	rows := m.visible()
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(rows) == 0:
		b.WriteString("Nothing to show")
	default:
		cells := make([][]string, len(rows))
		for i, it := range rows {
			cells[i] = m.row(it)
		}
		b.WriteString(renderTable(m.headers, cells, m.idx))
	}

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}
	return renderPage(m.title, b.String(), hotKeys)
}

func newBusList() listModel[models.Bus] {
	return newListModel("BUSES",
		[]string{"Number", "Plate", "Model", "Seats", "Fuel", "Status"},
		func(b models.Bus) []string {
			return []string{b.BusNumber, b.LicensePlate, valueOrDash(b.Model), itoa(b.Capacity), valueOrDash(b.FuelType), string(b.Status)}
		},
		func(b models.Bus, q string) bool {
			return models.BusFilter{Search: q}.Match(b)
		},
	)
}

func newScheduleList() listModel[models.Schedule] {
	return newListModel("SCHEDULES",
		[]string{"Route", "Departure", "Arrival", "Bus", "Driver", "Price", "Seats", "Status"},
		func(s models.Schedule) []string {
			bus, driver := "-", "-"
			if s.Bus != nil {
				bus = s.Bus.BusNumber
			}
			if s.Driver != nil {
				driver = s.Driver.Name
			}
			return []string{
				fitText(s.RouteDisplay(), 32),
				s.FormattedDepartureTime(),
				s.FormattedArrivalTime(),
				bus,
				driver,
				formatPrice(s.Price),
				itoa(s.AvailableSeats),
				string(s.Status),
			}
		},
		func(s models.Schedule, q string) bool {
			return models.ScheduleFilter{From: q}.Match(s) || models.ScheduleFilter{To: q}.Match(s)
		},
	)
}

func newUserList() listModel[models.User] {
	return newListModel("USERS",
		[]string{"Name", "Email", "Phone", "Role", "Status"},
		func(u models.User) []string {
			return []string{u.Name, u.Email, valueOrDash(u.Phone), string(u.Role), valueOrDash(string(u.Status))}
		},
		func(u models.User, q string) bool {
			return models.UserFilter{Search: q}.Match(u)
		},
	)
}
