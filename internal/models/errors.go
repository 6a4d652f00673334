package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for entity lookups.
var (
	ErrMovieNotFound = errors.New("movie not found")
)

// Sentinel errors for validation.
var (
	ErrMissingQuery = errors.New("query parameter q is required")
	ErrMissingTitle = errors.New("title is required")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
