package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input such as a missing project name.
	ErrValidation = errors.New("validation error")

	// ErrConnectivity indicates a template could not be fetched over the network.
	ErrConnectivity = errors.New("connectivity error")

	// ErrPermission indicates the destination is not writable.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template or local example was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the destination already holds conflicting files.
	ErrConflict = errors.New("conflicting files")

	// ErrNotArchive indicates a remote template did not look like a ZIP archive.
	ErrNotArchive = errors.New("not a zip archive")
)
