package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// listSchedules filters by departure_location, arrival_location,
// departure_date and status query parameters.
func (h *Handler) listSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.services.ScheduleService.List(r.Context(), models.ScheduleFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeData(w, r, "", schedules, http.StatusOK)
}

func (h *Handler) getSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	schedule, err := h.services.ScheduleService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeData(w, r, "", schedule, http.StatusOK)
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule models.Schedule
	if err := decodeBody(r, &schedule); err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	created, err := h.services.ScheduleService.Create(r.Context(), schedule)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeData(w, r, app.MsgScheduleCreated, created, http.StatusCreated)
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	var schedule models.Schedule
	if err = decodeBody(r, &schedule); err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	updated, err := h.services.ScheduleService.Update(r.Context(), id, schedule)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeData(w, r, app.MsgScheduleUpdated, updated, http.StatusOK)
}

func (h *Handler) updateScheduleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	var update models.ScheduleStatusUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	updated, err := h.services.ScheduleService.UpdateStatus(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeData(w, r, app.MsgScheduleStatusUpdated, updated, http.StatusOK)
}

func (h *Handler) deleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}

	if err = h.services.ScheduleService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, scheduleResource)
		return
	}
	writeMessage(w, r, app.MsgScheduleDeleted, http.StatusOK)
}
