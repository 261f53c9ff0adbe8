package models

import (
	"net/url"
	"strings"
)

// FilterAll is the filter value meaning "no constraint", as offered by the
// status and role pickers.
const FilterAll = "All"

func unconstrained(v string) bool {
	return v == "" || v == FilterAll
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// BusFilter narrows a bus listing.
type BusFilter struct {
	// Status keeps only buses in this status. Empty or [FilterAll] keeps all.
	Status string
	// Search keeps buses whose number, license plate or model contains it,
	// ignoring case.
	Search string
}

// Match reports whether b passes the filter.
func (f BusFilter) Match(b Bus) bool {
	if !unconstrained(f.Status) && string(b.Status) != f.Status {
		return false
	}
	if f.Search != "" &&
		!containsFold(b.BusNumber, f.Search) &&
		!containsFold(b.LicensePlate, f.Search) &&
		!containsFold(b.Model, f.Search) {
		return false
	}
	return true
}

// Query encodes the filter as URL query parameters.
func (f BusFilter) Query() url.Values {
	q := url.Values{}
	if !unconstrained(f.Status) {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role   string
	Status string
	// Search matches name or email, ignoring case.
	Search string
}

// Match reports whether u passes the filter.
func (f UserFilter) Match(u User) bool {
	if !unconstrained(f.Role) && string(u.Role) != f.Role {
		return false
	}
	if !unconstrained(f.Status) && string(u.Status) != f.Status {
		return false
	}
	if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
		return false
	}
	return true
}

// Query encodes the filter as URL query parameters.
func (f UserFilter) Query() url.Values {
	q := url.Values{}
	if !unconstrained(f.Role) {
		q.Set("role", f.Role)
	}
	if !unconstrained(f.Status) {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

// ScheduleFilter narrows a schedule listing. Query parameter names follow
// the backend: departure_location, arrival_location, departure_date, status.
type ScheduleFilter struct {
	From   string
	To     string
	Date   string // "2006-01-02"
	Status string
}

// Match reports whether s passes the filter. Locations match
// case-insensitively by substring.
func (f ScheduleFilter) Match(s Schedule) bool {
	if f.From != "" && !containsFold(s.Route.From, f.From) {
		return false
	}
	if f.To != "" && !containsFold(s.Route.To, f.To) {
		return false
	}
	if f.Date != "" && s.DepartureDate() != f.Date {
		return false
	}
	if !unconstrained(f.Status) && string(s.Status) != f.Status {
		return false
	}
	return true
}

// Query encodes the filter as URL query parameters.
func (f ScheduleFilter) Query() url.Values {
	q := url.Values{}
	if f.From != "" {
		q.Set("departure_location", f.From)
	}
	if f.To != "" {
		q.Set("arrival_location", f.To)
	}
	if f.Date != "" {
		q.Set("departure_date", f.Date)
	}
	if !unconstrained(f.Status) {
		q.Set("status", f.Status)
	}
	return q
}

// ScheduleFilterFromQuery is the inverse of [ScheduleFilter.Query].
func ScheduleFilterFromQuery(q url.Values) ScheduleFilter {
	return ScheduleFilter{
		From:   q.Get("departure_location"),
		To:     q.Get("arrival_location"),
		Date:   q.Get("departure_date"),
		Status: q.Get("status"),
	}
}

// BusFilterFromQuery is the inverse of [BusFilter.Query].
func BusFilterFromQuery(q url.Values) BusFilter {
	return BusFilter{Status: q.Get("status"), Search: q.Get("search")}
}

// UserFilterFromQuery is the inverse of [UserFilter.Query].
func UserFilterFromQuery(q url.Values) UserFilter {
	return UserFilter{Role: q.Get("role"), Status: q.Get("status"), Search: q.Get("search")}
}
