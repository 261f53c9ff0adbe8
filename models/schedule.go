package models

import "time"

// ScheduleStatus is the state of a scheduled trip.
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusDeparted  ScheduleStatus = "departed"
	ScheduleStatusArrived   ScheduleStatus = "arrived"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusDelayed   ScheduleStatus = "delayed"
)

// ScheduleStatuses lists every known schedule status in display order.
var ScheduleStatuses = []ScheduleStatus{
	ScheduleStatusScheduled,
	ScheduleStatusDeparted,
	ScheduleStatusArrived,
	ScheduleStatusCancelled,
	ScheduleStatusDelayed,
}

// LocalDateTimeLayout is the wire format of departure and arrival times: an
// ISO-8601 local date-time without zone. Fractional seconds are accepted on
// input.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTimeMinuteLayout is the ISO-8601 local date-time with the
// optional seconds left out.
const LocalDateTimeMinuteLayout = "2006-01-02T15:04"

// DisplayDateTimeLayout is the human readable form of departure and arrival
// times, e.g. "Dec 20, 2024 08:00".
const DisplayDateTimeLayout = "Jan 02, 2006 15:04"

// Route is the pair of stops a schedule runs between.
type Route struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Schedule is a planned trip of a bus along a route.
//
// Bus and Driver are embedded copies taken when the schedule was fetched,
// not foreign keys.
type Schedule struct {
	ID             int64          `json:"id"`
	Bus            *Bus           `json:"bus,omitempty" validate:"-"`
	Driver         *User          `json:"driver,omitempty" validate:"-"`
	Route          Route          `json:"route"`
	DepartureTime  string         `json:"departure_time" validate:"required"`
	ArrivalTime    string         `json:"arrival_time" validate:"required"`
	Frequency      string         `json:"frequency,omitempty"`
	Price          float64        `json:"price" validate:"gte=0"`
	AvailableSeats int            `json:"available_seats" validate:"gte=0"`
	Status         ScheduleStatus `json:"status,omitempty" validate:"omitempty,oneof=scheduled departed arrived cancelled delayed"`
}

// ScheduleStatusUpdate is the body of PATCH /schedules/:id/status.
// Reason and DelayMinutes are only meaningful for [ScheduleStatusDelayed].
type ScheduleStatusUpdate struct {
	Status       ScheduleStatus `json:"status" validate:"required,oneof=scheduled departed arrived cancelled delayed"`
	Reason       string         `json:"reason,omitempty"`
	DelayMinutes int            `json:"delay_minutes,omitempty" validate:"gte=0"`
}

// BusStatusUpdate is the body of PATCH /buses/:id/status.
type BusStatusUpdate struct {
	Status BusStatus `json:"status" validate:"required,oneof=active maintenance inactive"`
}

// FormattedDepartureTime renders DepartureTime with [DisplayDateTimeLayout],
// or returns it unchanged if it cannot be parsed.
func (s Schedule) FormattedDepartureTime() string {
	return formatLocalDateTime(s.DepartureTime)
}

// FormattedArrivalTime renders ArrivalTime with [DisplayDateTimeLayout], or
// returns it unchanged if it cannot be parsed.
func (s Schedule) FormattedArrivalTime() string {
	return formatLocalDateTime(s.ArrivalTime)
}

// RouteDisplay returns "<from> → <to>".
func (s Schedule) RouteDisplay() string {
	return s.Route.From + " → " + s.Route.To
}

// DepartureDate returns the "2006-01-02" date part of DepartureTime, or ""
// when the time cannot be parsed.
func (s Schedule) DepartureDate() string {
	t, err := ParseLocalDateTime(s.DepartureTime)
	if err != nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// ParseLocalDateTime parses v as [LocalDateTimeLayout] or, without seconds,
// as [LocalDateTimeMinuteLayout].
func ParseLocalDateTime(v string) (time.Time, error) {
	t, err := time.Parse(LocalDateTimeLayout, v)
	if err == nil {
		return t, nil
	}
	if t, minuteErr := time.Parse(LocalDateTimeMinuteLayout, v); minuteErr == nil {
		return t, nil
	}
	return time.Time{}, err
}

func formatLocalDateTime(v string) string {
	t, err := ParseLocalDateTime(v)
	if err != nil {
		return v
	}
	return t.Format(DisplayDateTimeLayout)
}
