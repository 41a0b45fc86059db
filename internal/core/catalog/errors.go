// Package catalog contains pure functions for parsing the shape and fish
// species catalogs from their YAML documents.
// This is part of the Functional Core - all functions are pure with no I/O.
package catalog

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// Input validation errors
	ErrEmptyInput = errors.New("catalog document is empty")

	// YAML parsing errors
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// Structure errors
	ErrNoShapes  = errors.New("catalog must define at least one pond shape")
	ErrNoSpecies = errors.New("catalog must define at least one fish species")

	// Entry validation errors. Malformed catalog data is fatal at load time;
	// it must never surface per-call.
	ErrInvalidCatalogData = errors.New("invalid catalog data")

	// Lookup errors
	ErrInvalidShape   = errors.New("unknown pond shape")
	ErrInvalidSpecies = errors.New("unknown fish species")
)

// ParseError wraps errors with context about which catalog entry failed.
type ParseError struct {
	Entry   string // e.g., "pond_shapes.circular"
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("%s: %s", e.Entry, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(entry, message string, err error) *ParseError {
	return &ParseError{
		Entry:   entry,
		Message: message,
		Err:     err,
	}
}
