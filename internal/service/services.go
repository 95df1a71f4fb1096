package service

import (
	"fmt"

	"github.com/MKhiriev/image-filter/internal/adapter"
	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/store"
)

type Services struct {
	AuthService    AuthService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	fetcher adapter.ImageFetcher,
	cfg config.StructuredConfig,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	logger.Info().Msg("creating new services...")

	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	imageService := NewImageValidationService().Wrap(
		NewImageService(fetcher, storages.ArtifactStorage, cfg.Adapter, metrics, logger),
	)

	return &Services{
		AuthService:    authService,
		ImageService:   imageService,
		AppInfoService: appInfoService,
	}, nil
}
