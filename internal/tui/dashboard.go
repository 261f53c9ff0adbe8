package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bus-schedule/models"
)

type dashboardModel struct {
	overview models.DashboardOverview
	loaded   bool
	loading  bool
}

func (m dashboardModel) View() string {
	if m.loading && !m.loaded {
		return renderPage("DASHBOARD", "Loading...", "esc: back")
	}

	t := m.overview.Stats.Totals
	var b strings.Builder
	fmt.Fprintf(&b, "Users:             %d\n", t.Users)
	fmt.Fprintf(&b, "Buses:             %d\n", t.Buses)
	fmt.Fprintf(&b, "Schedules:         %d\n", t.Schedules)
	fmt.Fprintf(&b, "Active schedules:  %d\n", t.ActiveSchedules)
	fmt.Fprintf(&b, "Today's trips:     %d\n", t.TodaysTrips)

	b.WriteString("\nRecent activity\n\n")
	if len(m.overview.Activities) == 0 {
		b.WriteString("  -")
	}
	for _, a := range m.overview.Activities {
		fmt.Fprintf(&b, "  %s  %s  %s\n", activityTime(a.Timestamp), fitText(a.Activity, 48), valueOrDash(a.User))
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "r: refresh  esc: back")
}

func activityTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format(models.DisplayDateTimeLayout)
}
