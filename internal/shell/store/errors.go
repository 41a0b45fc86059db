// Package store provides persistence for saved pond configurations.
package store

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a saved pond is not found.
	ErrNotFound = errors.New("saved pond not found")

	// ErrConnectionFailed is returned when the database connection fails.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrMigrationFailed is returned when database migration fails.
	ErrMigrationFailed = errors.New("database migration failed")

	// ErrInvalidData is returned when JSON serialization/deserialization fails.
	ErrInvalidData = errors.New("invalid data format")
)

// StoreError wraps errors with additional context.
type StoreError struct {
	Op      string // Operation that failed (e.g., "SavePond")
	Slug    string // Pond slug if applicable
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Slug, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, slug, message string, err error) *StoreError {
	return &StoreError{
		Op:      op,
		Slug:    slug,
		Message: message,
		Err:     err,
	}
}
