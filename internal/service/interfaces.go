package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService validates the credential presented by a caller.
type AuthService interface {
	// ValidateAuthorizationHeader checks a raw "Authorization" header value of
	// the form "<scheme> <token>" against the configured shared secret.
	//
	// Returns ErrMissingAuthorizationHeader, ErrMalformedAuthorizationHeader
	// or ErrIncorrectToken, or nil when the caller is authorized.
	ValidateAuthorizationHeader(ctx context.Context, header string) error
}

// ImageService acquires, filters and disposes of images.
type ImageService interface {
	// FilterImageFromURL downloads the image at imageURL, filters it and
	// persists the result locally. It returns the path of the artifact; the
	// caller owns the artifact and must pass the path to DeleteLocalFiles
	// once done with it. No artifact exists when an error is returned.
	FilterImageFromURL(ctx context.Context, imageURL string) (string, error)

	// DeleteLocalFiles removes the given artifacts, best-effort.
	// Failures are logged and never returned.
	DeleteLocalFiles(ctx context.Context, paths ...string)
}

// AppInfoService exposes static application information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ImageServiceWrapper defines middleware composition for ImageService.
// Implementations wrap an existing ImageService to add behavior such as
// validating.
type ImageServiceWrapper interface {
	Wrap(ImageService) ImageService // returns a decorated ImageService applying additional behavior
}
