package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCreatingStorageDir is returned when the artifact directory cannot
	// be created.
	ErrCreatingStorageDir = errors.New("error creating storage directory")

	// ErrSavingArtifact is returned when an artifact cannot be created or
	// encoded.
	ErrSavingArtifact = errors.New("error saving artifact")

	// ErrRemovingArtifact is returned (joined) for every artifact that could
	// not be removed.
	ErrRemovingArtifact = errors.New("error removing artifact")

	// ErrPathOutsideStorage is returned when Delete is asked to remove a
	// path that does not belong to the storage directory.
	ErrPathOutsideStorage = errors.New("path is outside storage directory")

	// ErrReadingStorageDir is returned when the sweeper cannot list the
	// artifact directory.
	ErrReadingStorageDir = errors.New("error reading storage directory")
)
