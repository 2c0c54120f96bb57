package store

import "errors"

// Common store errors.
var (
	// ErrVersionNotFound is returned when a version id is not in the chain.
	ErrVersionNotFound = errors.New("version not found")

	// ErrNoVersions is returned by Latest on an empty chain.
	ErrNoVersions = errors.New("no versions committed")
)
