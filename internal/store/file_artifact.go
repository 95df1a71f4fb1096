// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/utils"
	"github.com/disintegration/imaging"
)

const (
	artifactPrefix    = "filtered."
	artifactExtension = ".jpg"

	// DefaultJPEGQuality is the encoding quality of every artifact.
	DefaultJPEGQuality = 60
)

// nameGenerator produces unique file name stems.
type nameGenerator interface {
	Generate() string
}

// fileArtifactStorage is the file-system implementation of [ArtifactStorage].
type fileArtifactStorage struct {
	dir     string
	quality int

	names nameGenerator
	now   func() time.Time
}

// NewFileArtifactStorage returns an [ArtifactStorage] rooted at dir.
// The directory is created if it does not exist.
func NewFileArtifactStorage(dir string) (ArtifactStorage, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorageDir, err)
	}

	if err = os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingStorageDir, err)
	}

	return &fileArtifactStorage{
		dir:     absDir,
		quality: DefaultJPEGQuality,
		names:   utils.NewUUIDGenerator(),
		now:     time.Now,
	}, nil
}

func (s *fileArtifactStorage) Save(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSavingArtifact, err)
	}

	// the directory may have been removed by an operator since startup
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreatingStorageDir, err)
	}

	path := filepath.Join(s.dir, artifactPrefix+s.names.Generate()+artifactExtension)

	if err := imaging.Save(img, path, imaging.JPEGQuality(s.quality)); err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.FromContext(ctx).Err(rmErr).Str("path", path).Msg("error removing partially written artifact")
		}
		return "", fmt.Errorf("%w: %w", ErrSavingArtifact, err)
	}

	return path, nil
}

func (s *fileArtifactStorage) Delete(ctx context.Context, paths ...string) error {
	var errs []error

	for _, path := range paths {
		if !s.owns(path) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrPathOutsideStorage, path))
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%w %s: %w", ErrRemovingArtifact, path, err))
		}
	}

	return errors.Join(errs...)
}

func (s *fileArtifactStorage) Sweep(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrReadingStorageDir, err)
	}

	deadline := s.now().Add(-olderThan)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if entry.IsDir() || !isArtifactName(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently by its request
			continue
		}
		if !info.ModTime().Before(deadline) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err = os.Remove(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("%w %s: %w", ErrRemovingArtifact, path, err))
			}
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

// owns reports whether path is an artifact file directly inside the storage
// directory.
func (s *fileArtifactStorage) owns(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	return filepath.Dir(abs) == s.dir && isArtifactName(filepath.Base(abs))
}

func isArtifactName(name string) bool {
	return strings.HasPrefix(name, artifactPrefix) && strings.HasSuffix(name, artifactExtension)
}
