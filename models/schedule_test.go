package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_FormattedTimes(t *testing.T) {
	s := Schedule{DepartureTime: "2024-12-20T08:00:00", ArrivalTime: "2024-12-20T10:30:00"}

	assert.Equal(t, "Dec 20, 2024 08:00", s.FormattedDepartureTime())
	assert.Equal(t, "Dec 20, 2024 10:30", s.FormattedArrivalTime())
}

func TestSchedule_FormattedTimes_Unparsable(t *testing.T) {
	s := Schedule{DepartureTime: "tomorrow morning", ArrivalTime: ""}

	assert.Equal(t, "tomorrow morning", s.FormattedDepartureTime())
	assert.Equal(t, "", s.FormattedArrivalTime())
}

func TestSchedule_RouteDisplay(t *testing.T) {
	s := Schedule{Route: Route{From: "City A", To: "City B"}}
	assert.Equal(t, "City A → City B", s.RouteDisplay())
}

func TestSchedule_DepartureDate(t *testing.T) {
	assert.Equal(t, "2024-12-20", Schedule{DepartureTime: "2024-12-20T08:00:00"}.DepartureDate())
	assert.Equal(t, "", Schedule{DepartureTime: "bad"}.DepartureDate())
}

func TestSchedule_TimePrecision(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		formatted string
		date      string
	}{
		{name: "seconds", departure: "2024-12-20T08:00:00", formatted: "Dec 20, 2024 08:00", date: "2024-12-20"},
		{name: "minutes only", departure: "2024-12-20T08:00", formatted: "Dec 20, 2024 08:00", date: "2024-12-20"},
		{name: "fractional seconds", departure: "2024-12-20T08:00:00.250", formatted: "Dec 20, 2024 08:00", date: "2024-12-20"},
		{name: "hours only", departure: "2024-12-20T08", formatted: "2024-12-20T08", date: ""},
		{name: "date only", departure: "2024-12-20", formatted: "2024-12-20", date: ""},
		{name: "with zone", departure: "2024-12-20T08:00:00Z", formatted: "2024-12-20T08:00:00Z", date: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schedule{DepartureTime: tt.departure}

			assert.Equal(t, tt.formatted, s.FormattedDepartureTime())
			assert.Equal(t, tt.date, s.DepartureDate())
			assert.Equal(t, tt.date != "", ScheduleFilter{Date: "2024-12-20"}.Match(s))
		})
	}
}

func TestParseLocalDateTime(t *testing.T) {
	got, err := ParseLocalDateTime("2024-12-20T08:05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 20, 8, 5, 0, 0, time.UTC), got)

	_, err = ParseLocalDateTime("20/12/2024 08:05")
	assert.Error(t, err)
}
