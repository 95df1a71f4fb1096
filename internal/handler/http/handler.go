package http

import (
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/MKhiriev/image-filter/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
