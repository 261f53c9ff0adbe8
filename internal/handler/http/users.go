package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context(), models.UserFilterFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}
	writeData(w, r, "", users, http.StatusOK)
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.services.UserService.Drivers(r.Context())
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}
	writeData(w, r, "", drivers, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}
	writeData(w, r, "", user, http.StatusOK)
}

// updateUser changes profile, role and status. Passwords are not editable
// here.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	var user models.User
	if err = decodeBody(r, &user); err != nil {
		writeError(w, r, err, userResource)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), id, user)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}
	writeData(w, r, app.MsgUserUpdated, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, userResource)
		return
	}
	writeMessage(w, r, app.MsgUserDeleted, http.StatusOK)
}
