package http

import (
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
)

// Handler serves the /api routes of the fixture backend on top of the
// in-memory services.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("fixture API http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
