// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/store"
)

// ArtifactSweeper periodically removes filtered images that outlived any
// request that could still be sending them, e.g. after a crash between
// persisting and cleanup.
type ArtifactSweeper struct {
	storage store.ArtifactStorage

	// interval between sweeps; non-positive disables the sweeper.
	interval time.Duration
	// ttl is the minimum age of a removed artifact.
	ttl time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewArtifactSweeper(storage store.ArtifactStorage, cfg config.Workers, metrics *metrics.Metrics, logger *logger.Logger) *ArtifactSweeper {
	return &ArtifactSweeper{
		storage:  storage,
		interval: cfg.SweepInterval,
		ttl:      cfg.ArtifactTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *ArtifactSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("artifact sweeper is disabled")
		return
	}

	s.logger.Info().
		Dur("interval", s.interval).
		Dur("ttl", s.ttl).
		Msg("artifact sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("artifact sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *ArtifactSweeper) sweep(ctx context.Context) {
	removed, err := s.storage.Sweep(ctx, s.ttl)
	if err != nil {
		s.logger.Err(err).Int("removed", removed).Msg("error sweeping artifacts")
	} else if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("stale artifacts removed")
	}

	s.metrics.RecordSweep(removed)
}
