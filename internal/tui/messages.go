package tui

import "github.com/MKhiriev/go-bus-schedule/models"

type authDoneMsg struct {
	resp models.AuthResponse
}

// profileLoadedMsg reports a refresh of the signed-in user. The session
// already holds the new profile on success.
type profileLoadedMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	overview models.DashboardOverview
	err      error
}

type busesLoadedMsg struct {
	buses []models.Bus
	err   error
}

type schedulesLoadedMsg struct {
	schedules []models.Schedule
	err       error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

// mutationDoneMsg reports a create, update or delete. status is shown in the
// list on success.
type mutationDoneMsg struct {
	status string
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type errMsg struct {
	err error
}
