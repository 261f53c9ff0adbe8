// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
)

// authFailureMessage turns any login or registration failure into the text
// carried by the unsuccessful [models.AuthResponse].
func authFailureMessage(err error) string {
	var (
		validationErr *validators.ValidationError
		apiErr        *adapter.APIError
		decodeErr     *adapter.DecodeError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &apiErr) && apiErr.IsTransport():
		return fmt.Sprintf("Connection error: %v", apiErr.Err)
	case errors.As(err, &decodeErr), errors.Is(err, adapter.ErrIncompleteAuth):
		return app.MsgUnexpectedAuthAnswer
	default:
		return adapter.UserMessage(err)
	}
}
