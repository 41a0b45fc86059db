// Package validation provides pure validation of pond dimensions and fish
// quantities against the rules loaded with the shape catalog.
//
// All functions are pure (no I/O, no side effects). Dimension validation
// accumulates every failure instead of stopping at the first one, so callers
// receive a complete field-level diagnostic in a single pass.
package validation
