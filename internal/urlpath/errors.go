package urlpath

import (
	"fmt"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// EncodingError is returned when a URL cannot be percent-decoded.
// It matches domain.ErrEncoding under errors.Is.
type EncodingError struct {
	// URL is the full URL that failed to convert.
	URL string

	// Err is the underlying decoding failure.
	Err error
}

// Error implements error.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decoding failure.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is domain.ErrEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == domain.ErrEncoding
}
