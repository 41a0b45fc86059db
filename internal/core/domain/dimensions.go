// Package domain contains the core domain types for pond planning.
// This is part of the Functional Core - all functions are pure with no I/O.
package domain

import (
	"errors"
	"strings"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// Name validation errors
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooShort     = errors.New("name must be at least 3 characters")
	ErrNameTooLong      = errors.New("name must be at most 100 characters")
	ErrNameInvalidChars = errors.New("name can only contain alphanumeric characters, spaces, and hyphens")
)

// =============================================================================
// PondDimensions
// =============================================================================

// PondDimensions holds the physical dimensions and shape of a pond.
// Depending on the shape, WidthM may represent the width of a bounding box,
// the diameter of a circle, or the side length of a regular polygon. Shapes
// that do not use a length dimension ignore LengthM entirely.
type PondDimensions struct {
	LengthM float64 `json:"length_meters"`
	WidthM  float64 `json:"width_meters"`
	DepthM  float64 `json:"avg_depth_meters"`
	Shape   string  `json:"shape"`
}

// NewPondDimensions creates pond dimensions with the shape key normalized
// to lowercase. It performs no bounds validation; that is the validator's job.
func NewPondDimensions(length, width, depth float64, shape string) PondDimensions {
	return PondDimensions{
		LengthM: length,
		WidthM:  width,
		DepthM:  depth,
		Shape:   strings.ToLower(strings.TrimSpace(shape)),
	}
}

// IsZero reports whether the dimensions have never been set.
func (d PondDimensions) IsZero() bool {
	return d == PondDimensions{}
}
