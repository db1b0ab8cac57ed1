package tui

import "errors"

// ErrMissingDropService is returned when the drop service is not provided.
var ErrMissingDropService = errors.New("tui: drop service is required")

// ErrMissingTargetService is returned when the target service is not provided.
var ErrMissingTargetService = errors.New("tui: target service is required")
