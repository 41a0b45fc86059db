package validation

import (
	"fmt"
	"strings"

	"github.com/PartTimeLegend/pond-planner/internal/core/catalog"
)

// =============================================================================
// ValidationError
// =============================================================================

// FieldError is a single validation failure, naming the offending field and
// the bound it violated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Message
}

// ValidationError accumulates all field-level failures of one validation
// pass. It is always recoverable; no state has changed when it is returned.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// add appends a failure for a field.
func (e *ValidationError) add(field, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// orNil returns nil when no failures were accumulated.
func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// =============================================================================
// Validator
// =============================================================================

// Validator checks dimension and quantity inputs against the catalogs and
// their rule set. Catalogs are injected once and treated as immutable.
type Validator struct {
	shapes *catalog.ShapeCatalog
	fish   *catalog.FishCatalog
	rules  catalog.ValidationRules
}

// New creates a validator over the given catalogs. The rule set is taken from
// the shape catalog's validation_rules block.
func New(shapes *catalog.ShapeCatalog, fish *catalog.FishCatalog) *Validator {
	return &Validator{
		shapes: shapes,
		fish:   fish,
		rules:  shapes.Rules(),
	}
}

// ValidateDimensions checks pond dimensions against the global bounds and any
// shape-specific overrides. All failures are accumulated; nil means valid.
//
// Dimensions the shape does not use are skipped entirely: a circular pond
// carries no length, so length bounds do not apply to it. Depth is always
// required.
func (v *Validator) ValidateDimensions(length, width, depth float64, shape string) error {
	verr := &ValidationError{}

	key := strings.ToLower(strings.TrimSpace(shape))
	if !v.shapes.Exists(key) {
		verr.add("shape", "unknown shape %q (available: %s)", shape, strings.Join(v.shapes.Keys(), ", "))
		return verr.orNil()
	}
	def, _ := v.shapes.Get(key)

	minDims, maxDims := v.rules.MinDimensions, v.rules.MaxDimensions

	if def.UsesLength {
		if length < minDims.Length {
			verr.add("length", "length must be at least %g meters", minDims.Length)
		}
		if length > maxDims.Length {
			verr.add("length", "length cannot exceed %g meters", maxDims.Length)
		}
	}
	if def.UsesWidth {
		label := def.DimensionLabel()
		if width < minDims.Width {
			verr.add("width", "%s must be at least %g meters", label, minDims.Width)
		}
		if width > maxDims.Width {
			verr.add("width", "%s cannot exceed %g meters", label, maxDims.Width)
		}
	}
	if depth < minDims.Depth {
		verr.add("depth", "depth must be at least %g meters", minDims.Depth)
	}
	if depth > maxDims.Depth {
		verr.add("depth", "depth cannot exceed %g meters", maxDims.Depth)
	}

	// Shape-specific overrides, distinct from the generic width bounds.
	if rule, ok := v.rules.ShapeRules[key]; ok {
		if rule.MinDiameter > 0 && width < rule.MinDiameter {
			verr.add("width", "diameter must be at least %g meters for %s ponds", rule.MinDiameter, key)
		}
		if rule.MinSideLength > 0 && width < rule.MinSideLength {
			verr.add("width", "side length must be at least %g meters for %s ponds", rule.MinSideLength, key)
		}
	}

	return verr.orNil()
}

// ValidateFishQuantity checks a species key and a quantity for a stock
// mutation. Quantity zero is valid: adding zero fish is a no-op and removing
// zero fish leaves the stock untouched. Negative quantities and quantities
// over the catalog cap are rejected.
func (v *Validator) ValidateFishQuantity(species string, quantity int) error {
	verr := &ValidationError{}

	if !v.fish.Exists(species) {
		verr.add("species", "unknown fish species %q", species)
	}
	if quantity < 0 {
		verr.add("quantity", "quantity cannot be negative, got %d", quantity)
	}
	if v.rules.MaxFishQuantity > 0 && quantity > v.rules.MaxFishQuantity {
		verr.add("quantity", "quantity exceeds maximum allowed (%d)", v.rules.MaxFishQuantity)
	}

	return verr.orNil()
}

// ValidateFishBatch checks every entry of a batch mutation, accumulating
// failures across entries so the caller sees the complete diagnostic.
func (v *Validator) ValidateFishBatch(batch map[string]int) error {
	verr := &ValidationError{}

	for species, quantity := range batch {
		if err := v.ValidateFishQuantity(species, quantity); err != nil {
			if inner, ok := err.(*ValidationError); ok {
				for _, fe := range inner.Errors {
					verr.add(fe.Field, "%s: %s", species, fe.Message)
				}
			}
		}
	}

	return verr.orNil()
}
