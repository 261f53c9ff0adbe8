package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// register creates an account and signs it in.
//
// Answers 201 with a flat {success, message, token, user} body, or 400 for
// malformed input, failed validation and a taken email.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, userResource)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	h.writeAuth(w, r, user, app.MsgRegisterSuccessful, http.StatusCreated)
}

// login answers 200 with the same body as register. Unknown emails and
// wrong passwords both answer 400 "Invalid credentials".
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, userResource)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	h.writeAuth(w, r, user, app.MsgLoginSuccessful, http.StatusOK)
}

// me returns the account the bearer token belongs to.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeMessage(w, r, app.MsgNotAuthenticated, http.StatusUnauthorized)
		return
	}

	writeJSON(w, r, models.AuthResponse{Success: true, User: &user}, http.StatusOK)
}

func (h *Handler) writeAuth(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, userResource)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg(message)
	writeJSON(w, r, models.AuthResponse{
		Success: true,
		Message: message,
		Token:   token.SignedString,
		User:    &user,
	}, status)
}
