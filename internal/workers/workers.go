package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/store"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(storages *store.Storages, cfg config.Workers, metrics *metrics.Metrics, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return New(
		NewArtifactSweeper(storages.ArtifactStorage, cfg, metrics, logger),
	)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// New builds a Workers aggregate from already constructed workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}
