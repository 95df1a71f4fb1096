// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to settings that no source provided.
const (
	DefaultPort           = 8082
	DefaultVersion        = "dev"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxImageSize   = 20 << 20
	DefaultSweepInterval  = 5 * time.Minute
	DefaultArtifactTTL    = 15 * time.Minute
)

const tempDirName = "image-filter"

// applyDefaults fills zero-valued optional settings.
// A negative Workers.SweepInterval is kept as is and disables the sweeper.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.Storage.Files.TempDir == "" {
		cfg.Storage.Files.TempDir = filepath.Join(os.TempDir(), tempDirName)
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.MaxImageSize == 0 {
		cfg.Adapter.MaxImageSize = DefaultMaxImageSize
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = DefaultSweepInterval
	}
	if cfg.Workers.ArtifactTTL == 0 {
		cfg.Workers.ArtifactTTL = DefaultArtifactTTL
	}
}
