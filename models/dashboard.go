package models

// DashboardTotals holds the counters shown on the admin dashboard.
type DashboardTotals struct {
	Users           int `json:"users"`
	Buses           int `json:"buses"`
	Schedules       int `json:"schedules"`
	ActiveSchedules int `json:"activeSchedules"`
	TodaysTrips     int `json:"todaysTrips"`
}

// DashboardStats is the data of GET /admin/dashboard/stats.
type DashboardStats struct {
	Totals DashboardTotals `json:"totals"`
}

// Activity is one entry of GET /admin/dashboard/activities.
type Activity struct {
	Timestamp string `json:"timestamp"`
	Activity  string `json:"activity"`
	User      string `json:"user"`
}

// DashboardOverview combines stats and recent activities loaded together.
type DashboardOverview struct {
	Stats      DashboardStats
	Activities []Activity
}
