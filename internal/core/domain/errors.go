package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// URL Errors.

	// ErrEncoding indicates a URL contained a malformed percent-escape
	// or decoded to invalid UTF-8.
	ErrEncoding = errors.New("malformed percent-encoding")

	// ErrNotLocal indicates at least one URL in a drop does not reference a local file.
	ErrNotLocal = errors.New("not a local file URL")
)
