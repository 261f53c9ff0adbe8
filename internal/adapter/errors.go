package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bus-schedule/models"
)

var (
	// ErrTransport matches every failure where no HTTP response was received:
	// connection refused, DNS failure, timeout, cancelled context.
	ErrTransport = errors.New("transport error")
	// ErrStatus matches every response with a non-2xx status.
	ErrStatus = errors.New("unexpected status")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrUnsupportedMethod is returned by Do for methods outside
	// GET, POST, PUT, PATCH and DELETE.
	ErrUnsupportedMethod = errors.New("unsupported http method")

	// ErrUnsuccessful is returned by [DecodeEnvelope] when a 2xx body
	// carries "success": false.
	ErrUnsuccessful = errors.New("request unsuccessful")

	// ErrIncompleteAuth is returned by [DecodeAuthResponse] for a successful
	// answer that lacks the token or the user.
	ErrIncompleteAuth = errors.New("auth answer without token or user")
)

// APIError describes a failed API call.
//
// StatusCode is 0 when the request never produced a response; Err then holds
// the transport cause. Otherwise StatusCode is the HTTP status and Body the
// raw response text.
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %v", e.Err)
	}

	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, body)
}

// Unwrap exposes [ErrTransport] and the cause for transport failures, and
// [ErrStatus] plus the per-status sentinel otherwise.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == 0 {
		if e.Err == nil {
			return []error{ErrTransport}
		}
		return []error{ErrTransport, e.Err}
	}

	errs := []error{ErrStatus}
	if sentinel := statusSentinel(e.StatusCode); sentinel != nil {
		errs = append(errs, sentinel)
	}
	return errs
}

// IsTransport reports whether no HTTP response was received.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}

// Message returns the "message" field of an envelope-shaped error body, or
// "" when the body is not such an envelope.
func (e *APIError) Message() string {
	var envelope models.MessageEnvelope
	if err := json.Unmarshal([]byte(e.Body), &envelope); err != nil {
		return ""
	}
	return envelope.Message
}

// DecodeError reports a 2xx body that is not the expected JSON.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to show a user for err: the server supplied
// message when the failure carries one, the error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
	}

	var unsuccessful *UnsuccessfulError
	if errors.As(err, &unsuccessful) && unsuccessful.Message != "" {
		return unsuccessful.Message
	}

	return err.Error()
}

// UnsuccessfulError carries the message of an envelope with
// "success": false. It matches [ErrUnsuccessful].
type UnsuccessfulError struct {
	Message string
}

func (e *UnsuccessfulError) Error() string {
	if e.Message == "" {
		return ErrUnsuccessful.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnsuccessful, e.Message)
}

func (e *UnsuccessfulError) Unwrap() error {
	return ErrUnsuccessful
}
