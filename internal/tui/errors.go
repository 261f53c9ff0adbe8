// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
)

var ErrUserQuit = errors.New("user quit")

const (
	msgServerUnavailable = "Network is down or the server is unavailable"
	msgSessionExpired    = "Your session has expired, please sign in again"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrTransport):
		return msgServerUnavailable
	case errors.Is(err, service.ErrNotAuthenticated):
		return msgSessionExpired
	}
	return adapter.UserMessage(err)
}
