package http

import (
	"net/http"
	"strconv"
)

var dashboardResource = resource{}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DashboardService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, dashboardResource)
		return
	}
	writeData(w, r, "", stats, http.StatusOK)
}

// dashboardActivities honours an optional ?limit=N. Missing or malformed
// limits fall back to the service default.
func (h *Handler) dashboardActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.services.DashboardService.Activities(r.Context(), limit)
	if err != nil {
		writeError(w, r, err, dashboardResource)
		return
	}
	writeData(w, r, "", activities, http.StatusOK)
}
