package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/models"
)

func (h *Handler) listBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := h.services.BusService.List(r.Context(), models.BusFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeData(w, r, "", buses, http.StatusOK)
}

func (h *Handler) getBus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}

	bus, err := h.services.BusService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeData(w, r, "", bus, http.StatusOK)
}

func (h *Handler) createBus(w http.ResponseWriter, r *http.Request) {
	var bus models.Bus
	if err := decodeBody(r, &bus); err != nil {
		writeError(w, r, err, busResource)
		return
	}

	created, err := h.services.BusService.Create(r.Context(), bus)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeData(w, r, app.MsgBusCreated, created, http.StatusCreated)
}

func (h *Handler) updateBus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}

	var bus models.Bus
	if err = decodeBody(r, &bus); err != nil {
		writeError(w, r, err, busResource)
		return
	}

	updated, err := h.services.BusService.Update(r.Context(), id, bus)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeData(w, r, app.MsgBusUpdated, updated, http.StatusOK)
}

func (h *Handler) updateBusStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}

	var update models.BusStatusUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err, busResource)
		return
	}

	updated, err := h.services.BusService.UpdateStatus(r.Context(), id, update.Status)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeData(w, r, app.MsgBusStatusUpdated, updated, http.StatusOK)
}

func (h *Handler) deleteBus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, busResource)
		return
	}

	if err = h.services.BusService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, busResource)
		return
	}
	writeMessage(w, r, app.MsgBusDeleted, http.StatusOK)
}
