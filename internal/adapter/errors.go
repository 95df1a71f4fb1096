package adapter

import "errors"

var (
	// ErrImageNotFound is returned when the source server answers 404.
	ErrImageNotFound = errors.New("image not found")
	// ErrUnexpectedStatus is returned for any other non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrImageTooLarge is returned when the body exceeds the configured limit.
	ErrImageTooLarge = errors.New("image exceeds size limit")
	// ErrEmptyImage is returned when the source server sends an empty body.
	ErrEmptyImage = errors.New("empty image body")
	// ErrFetchingImage wraps transport-level failures (DNS, connect, timeout).
	ErrFetchingImage = errors.New("error fetching image")
)
