// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists filtered image artifacts on the local file system.
package store

import (
	"context"
	"image"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/artifact_storage_mock.go -package=mock

// ArtifactStorage owns the directory filtered images are written to.
//
// Every artifact gets a unique file name, so concurrent requests never share
// or overwrite each other's files.
type ArtifactStorage interface {
	// Save encodes img as JPEG into a new uniquely named file and returns its
	// path. A partially written file is removed on failure.
	Save(ctx context.Context, img image.Image) (string, error)

	// Delete removes the given artifacts. Paths that no longer exist are
	// skipped; every other failure is joined into the returned error.
	// Paths outside the storage directory are never touched.
	Delete(ctx context.Context, paths ...string) error

	// Sweep removes artifacts whose modification time is older than
	// olderThan and returns how many were removed.
	Sweep(ctx context.Context, olderThan time.Duration) (int, error)
}
