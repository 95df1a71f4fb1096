package store

import (
	"fmt"

	"github.com/MKhiriev/image-filter/internal/config"
)

// Storages aggregates every storage backend of the application.
type Storages struct {
	ArtifactStorage ArtifactStorage
}

// NewStorages builds all storages from cfg.
func NewStorages(cfg config.Storage) (*Storages, error) {
	artifacts, err := NewFileArtifactStorage(cfg.Files.TempDir)
	if err != nil {
		return nil, fmt.Errorf("error creating artifact storage: %w", err)
	}

	return &Storages{
		ArtifactStorage: artifacts,
	}, nil
}
