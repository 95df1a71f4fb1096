// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretToken == "" {
		return ErrSecretTokenRequired
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.MaxImageSize < 0 {
		return ErrInvalidAdapterConfigs
	}

	// an artifact younger than one acquisition timeout may still be in use
	if cfg.Workers.SweepInterval > 0 && cfg.Workers.ArtifactTTL <= cfg.Adapter.RequestTimeout {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
