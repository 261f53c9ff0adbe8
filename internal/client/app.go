package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/tui"
	"github.com/MKhiriev/go-bus-schedule/internal/workers"
)

var errNoUI = errors.New("no ui provided")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits. Quitting is not an error. The
// session never outlives Run.
func (a *App) Run(ctx context.Context) error {
	defer a.services.Auth.Logout()

	a.logger.Info().Msg("client started")

	err := workers.New(workers.WorkerFunc(a.ui.Run)).Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	}

	a.logger.Err(err).Msg("client failed")
	return fmt.Errorf("run ui: %w", err)
}
