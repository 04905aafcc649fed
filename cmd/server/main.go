package main

import (
	"context"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/handler"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/server"
	"github.com/MKhiriev/novera/internal/service"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("novera-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("novera-server", cfg.App.LogLevel)
	log.Info().Stringer("build", buildInfo).Msg("starting novera server")

	if cfg.App.Version == "" {
		if !buildInfo.HasVersion() {
			log.Warn().Msg("no application version configured or injected at build time")
		}
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
