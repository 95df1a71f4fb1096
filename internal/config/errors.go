package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrSecretTokenRequired indicates that no shared secret was provided
	// (SECRET_TOKEN, -secret-token or app.secret_token).
	ErrSecretTokenRequired = errors.New("secret token is required")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid image fetcher settings
	// (for example, a negative timeout or size limit).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, an artifact TTL not exceeding the request timeout).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
