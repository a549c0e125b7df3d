// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Catalog errors.
var (
	// ErrCatalogStatus indicates the catalog API returned a non-OK HTTP status.
	ErrCatalogStatus = errors.New("catalog status")

	// ErrNoResults indicates no results were found.
	ErrNoResults = errors.New("no results")
)

// Recommendation errors.
var (
	// ErrInsufficientResults indicates too few movies survived filtering to form a poll.
	ErrInsufficientResults = errors.New("insufficient results")
)

// Cache errors.
var (
	// ErrCacheNotFound indicates a cache entry was not found.
	ErrCacheNotFound = errors.New("cache entry not found")

	// ErrMalformedCache indicates a cache entry is missing required columns.
	ErrMalformedCache = errors.New("malformed cache entry")
)

// Poll routing errors.
var (
	// ErrPollNotRegistered indicates a vote event arrived for an unknown poll.
	ErrPollNotRegistered = errors.New("poll not registered")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
