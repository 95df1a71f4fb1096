// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
)

// authService is the concrete implementation of AuthService.
// It compares the presented token with a process-wide shared secret.
type authService struct {
	// secretToken is the shared secret every authorized caller presents.
	// Read-only after construction.
	secretToken []byte

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the application config.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.SecretToken == "" {
		return nil, ErrSecretIsNotSpecified
	}

	return &authService{
		secretToken: []byte(cfg.SecretToken),
		logger:      logger,
	}, nil
}

// ValidateAuthorizationHeader validates a raw "Authorization" header.
//
// The header is expected to follow the format:
//
//	Authorization: <scheme> <token>
//
// split on single spaces into exactly two parts. The scheme is not
// interpreted; the token must be exactly equal to the shared secret.
func (a *authService) ValidateAuthorizationHeader(ctx context.Context, header string) error {
	if header == "" {
		return ErrMissingAuthorizationHeader
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return ErrMalformedAuthorizationHeader
	}

	if subtle.ConstantTimeCompare([]byte(parts[1]), a.secretToken) != 1 {
		logger.FromContext(ctx).Debug().Str("scheme", parts[0]).Msg("token mismatch")
		return ErrIncorrectToken
	}

	return nil
}
