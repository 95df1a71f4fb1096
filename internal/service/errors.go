package service

import "errors"

// Credential errors. Their messages are the client-facing reasons.
var (
	ErrMissingAuthorizationHeader   = errors.New("authorization header is required")
	ErrMalformedAuthorizationHeader = errors.New("authorization header is not valid")
	ErrIncorrectToken               = errors.New("token is incorrect")
)

// Image pipeline errors.
var (
	ErrInvalidImageURL         = errors.New("invalid image url")
	ErrAcquiringImage          = errors.New("error acquiring image")
	ErrDecodingImage           = errors.New("error decoding image")
	ErrImageDimensionsTooLarge = errors.New("image dimensions exceed limit")
	ErrPersistingImage         = errors.New("error persisting filtered image")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSecretIsNotSpecified  = errors.New("secret token is not specified")
)
