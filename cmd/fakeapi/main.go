package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/handler"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/server"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/internal/workers"
	"github.com/MKhiriev/go-bus-schedule/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("bus-schedule-fakeapi")
	cfg, err := config.GetFakeAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Dur("request_timeout", cfg.Server.RequestTimeout).Msg("received configs")

	ctx := context.Background()
	memory, err := store.NewSeededMemory(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding storage")
	}

	services := service.NewServices(memory, *cfg, validators.NewValidator(), log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = workers.New(srv).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
