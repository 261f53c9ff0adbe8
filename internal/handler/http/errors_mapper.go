package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:              http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrUserAlreadyExists:       http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrInvalidID:     http.StatusBadRequest,
	store.ErrAlreadyExists: http.StatusBadRequest,
	store.ErrNotFound:      http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// resource names the messages a route family answers with.
type resource struct {
	notFound string
	exists   string
}

var (
	busResource      = resource{notFound: app.MsgBusNotFound, exists: app.MsgBusExists}
	scheduleResource = resource{notFound: app.MsgScheduleNotFound}
	userResource     = resource{notFound: app.MsgUserNotFound, exists: app.MsgUserAlreadyExists}
)

func (res resource) message(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrTokenIsExpired):
		return app.MsgTokenExpired
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return app.MsgInvalidToken
	case errors.Is(err, store.ErrInvalidID):
		return app.MsgInvalidIDProvided
	case errors.Is(err, ErrInvalidRequestBody):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgValidationFailed
	case errors.Is(err, store.ErrNotFound) && res.notFound != "":
		return res.notFound
	case (errors.Is(err, store.ErrAlreadyExists) || errors.Is(err, service.ErrUserAlreadyExists)) && res.exists != "":
		return res.exists
	default:
		return app.MsgServerError
	}
}

// fieldError mirrors one entry of the "errors" list of a failed validation.
type fieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

type validationEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

// writeError answers err with the matching status and an unsuccessful
// envelope. Validation failures also list the offending fields.
func writeError(w http.ResponseWriter, r *http.Request, err error, res resource) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		body := validationEnvelope{Message: app.MsgValidationFailed, Errors: make([]fieldError, 0, len(ve.Fields))}
		for _, f := range ve.Fields {
			body.Errors = append(body.Errors, fieldError{Path: f.Field, Msg: f.Message})
		}
		writeJSON(w, r, body, status)
		return
	}

	writeJSON(w, r, models.MessageEnvelope{Message: res.message(err)}, status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeJSON(w, r, models.MessageEnvelope{Success: status < http.StatusBadRequest, Message: message}, status)
}

func writeData[T any](w http.ResponseWriter, r *http.Request, message string, data T, status int) {
	writeJSON(w, r, models.DataEnvelope[T]{Success: true, Message: message, Data: data}, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
