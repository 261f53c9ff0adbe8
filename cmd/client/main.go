package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/client"
	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/session"
	"github.com/MKhiriev/go-bus-schedule/internal/tui"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("bus-schedule-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bus-schedule-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	sess := session.NewStore()
	api, err := adapter.NewHTTPAPIClient(cfg.Adapter, sess, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	services := service.NewClientServices(api, sess, validators.NewValidator(), log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
