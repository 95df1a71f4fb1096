// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// image-filter gateway. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Once returned by [GetStructuredConfig] the value is treated as immutable:
// components receive the sub-structs they need by value.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the shared secret that guards
	// the filtering endpoint and the application version.
	App App

	// Storage holds configuration for the local artifact store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the HTTP listener.
	Server Server

	// Adapter holds settings of the outbound HTTP client that downloads
	// source images.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretToken is the shared secret every caller of /filteredimage must
	// present in the "Authorization: <scheme> <token>" header. Required.
	// Env: SECRET_TOKEN
	SecretToken string `env:"SECRET_TOKEN"`

	// Version is the version string exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: SERVER_HOST
	Host string `env:"SERVER_HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// Files holds the file-system settings for filtered image artifacts.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the artifact store.
type Files struct {
	// TempDir is the directory filtered images are written to before they
	// are streamed back and removed.
	// Env: STORAGE_FILES_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// Adapter holds configuration of the outbound image fetcher.
type Adapter struct {
	// RequestTimeout bounds a whole acquisition and transformation: download,
	// decoding, filtering and persisting of one image.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxImageSize is the largest source image, in bytes, the fetcher
	// accepts.
	// Env: ADAPTER_MAX_IMAGE_SIZE
	MaxImageSize int64 `env:"MAX_IMAGE_SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often orphaned artifacts are looked for.
	// Zero selects the default; a negative value disables the sweeper.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// ArtifactTTL is the age after which an artifact still present on disk
	// is considered orphaned. Must exceed Adapter.RequestTimeout.
	// Env: WORKERS_ARTIFACT_TTL
	ArtifactTTL time.Duration `env:"ARTIFACT_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing optional values are filled with defaults afterwards.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
