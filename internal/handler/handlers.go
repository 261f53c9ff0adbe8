// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the fixture API.
package handler

import (
	"errors"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/handler/http"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
)

// errNoListenAddress is returned by NewHandlers when the server
// configuration carries no HTTP address.
var errNoListenAddress = errors.New("fixture API listen address is empty")

// Handlers groups the transports the fixture API is served over.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
