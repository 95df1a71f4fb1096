package main

import (
	"fmt"

	"github.com/MKhiriev/image-filter/internal/adapter"
	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/handler"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/server"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/MKhiriev/image-filter/internal/store"
	"github.com/MKhiriev/image-filter/internal/workers"
	"github.com/MKhiriev/image-filter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("image-filter-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("temp_dir", cfg.Storage.Files.TempDir).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Int64("max_image_size", cfg.Adapter.MaxImageSize).
		Dur("sweep_interval", cfg.Workers.SweepInterval).
		Dur("artifact_ttl", cfg.Workers.ArtifactTTL).
		Str("version", cfg.App.Version).
		Msg("received configs")

	appMetrics := metrics.New()

	storages, err := store.NewStorages(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	fetcher := adapter.NewHTTPImageFetcher(cfg.Adapter)

	services, err := service.NewServices(storages, fetcher, *cfg, appMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, appMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, appMetrics, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
