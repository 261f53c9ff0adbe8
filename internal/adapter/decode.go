package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/models"
)

// DecodeEnvelope parses body as a response envelope and decodes its data
// field into T.
//
// Malformed JSON yields a [*DecodeError]. An envelope with "success": false
// yields an [*UnsuccessfulError] carrying the server message. A missing or
// null data field yields the zero T.
func DecodeEnvelope[T any](body string) (T, error) {
	var zero T

	var envelope models.Envelope
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return zero, &DecodeError{Body: body, Err: err}
	}
	if !envelope.Success {
		return zero, &UnsuccessfulError{Message: envelope.Message}
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, &DecodeError{Body: body, Err: err}
	}
	return out, nil
}

// Call marshals payload (nil sends no body), sends it with c and decodes the
// envelope data of the answer into T.
func Call[T any](ctx context.Context, c APIClient, method, path string, payload any) (T, error) {
	var zero T

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
	}

	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	return DecodeEnvelope[T](raw)
}

// Exec is [Call] for endpoints whose answer carries no data, such as
// deletes. It returns the envelope message.
func Exec(ctx context.Context, c APIClient, method, path string, payload any) (string, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
	}

	raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return "", err
	}

	var envelope models.MessageEnvelope
	if err = json.Unmarshal([]byte(raw), &envelope); err != nil {
		return "", &DecodeError{Body: raw, Err: err}
	}
	if !envelope.Success {
		return "", &UnsuccessfulError{Message: envelope.Message}
	}
	return envelope.Message, nil
}

// DecodeAuthResponse parses the answer of the login and registration
// endpoints, which carry token and user beside the envelope fields instead
// of under data.
//
// Malformed JSON yields a [*DecodeError]. "success": false yields an
// [*UnsuccessfulError] with the server message. A successful answer without
// token or user yields [ErrIncompleteAuth].
func DecodeAuthResponse(body string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return models.AuthResponse{}, &DecodeError{Body: body, Err: err}
	}
	if !resp.Success {
		return models.AuthResponse{}, &UnsuccessfulError{Message: resp.Message}
	}
	if !resp.Authenticated() {
		return models.AuthResponse{}, ErrIncompleteAuth
	}
	return resp, nil
}
