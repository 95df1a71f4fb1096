package handler

import (
	"github.com/MKhiriev/image-filter/internal/handler/http"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, logger),
	}, nil
}
