// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/image-filter/internal/adapter"
	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/MKhiriev/image-filter/internal/store"
)

// imageService is the concrete implementation of ImageService.
// It fetches images through an ImageFetcher, filters them in memory and
// persists the result through an ArtifactStorage.
type imageService struct {
	fetcher adapter.ImageFetcher
	storage store.ArtifactStorage

	// timeout bounds one whole acquisition and transformation.
	timeout time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewImageService constructs an ImageService.
func NewImageService(
	fetcher adapter.ImageFetcher,
	storage store.ArtifactStorage,
	cfg config.Adapter,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) ImageService {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	return &imageService{
		fetcher: fetcher,
		storage: storage,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// FilterImageFromURL fetches, filters and persists one image.
//
// The work runs under a context detached from ctx's cancellation and bounded
// by the configured timeout: a caller that goes away does not abort the
// pipeline halfway, and the returned artifact is still handed back so that
// it can be removed.
func (s *imageService) FilterImageFromURL(ctx context.Context, imageURL string) (string, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	path, err := s.filterImageFromURL(ctx, imageURL)

	s.metrics.RecordTransform(err, time.Since(start))
	if err != nil {
		log.Err(err).Str("image_url", imageURL).Msg("image processing failed")
		return "", err
	}

	log.Debug().
		Str("image_url", imageURL).
		Str("path", path).
		Dur("duration", time.Since(start)).
		Msg("image filtered")

	return path, nil
}

func (s *imageService) filterImageFromURL(ctx context.Context, imageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	data, err := s.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAcquiringImage, err)
	}

	img, err := decodeImage(data)
	if err != nil {
		return "", err
	}

	path, err := s.storage.Save(ctx, filterImage(img))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistingImage, err)
	}

	return path, nil
}

// DeleteLocalFiles removes every path exactly once. Errors are logged and
// counted, never returned.
func (s *imageService) DeleteLocalFiles(ctx context.Context, paths ...string) {
	log := logger.FromContext(ctx)

	removed, failed := 0, 0
	for _, path := range paths {
		if err := s.storage.Delete(ctx, path); err != nil {
			failed++
			log.Err(err).Str("path", path).Msg("error deleting local file")
			continue
		}
		removed++
	}

	s.metrics.RecordArtifactRemoval(removed, failed)
}
