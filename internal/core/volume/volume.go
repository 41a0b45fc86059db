// Package volume derives pond surface area and water volume from a shape
// definition and dimensions.
// This is part of the Functional Core - all functions are pure with no I/O.
package volume

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/PartTimeLegend/pond-planner/internal/core/catalog"
	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNonPositiveVolume is returned when a formula yields a volume that is
	// not positive. With validated dimensions this indicates a catalog bug.
	ErrNonPositiveVolume = errors.New("calculated volume must be positive")
)

// LitersPerCubicMeter converts cubic meters to liters.
const LitersPerCubicMeter = 1000.0

// =============================================================================
// Calculator
// =============================================================================

// Calculator computes surface area and volume using the shape catalog's
// formula parameters. Results are unrounded floats; presentation layers round.
type Calculator struct {
	shapes *catalog.ShapeCatalog
}

// NewCalculator creates a volume calculator over the given shape catalog.
func NewCalculator(shapes *catalog.ShapeCatalog) *Calculator {
	return &Calculator{shapes: shapes}
}

// AreaM2 computes the pond surface area in square meters for a shape and the
// dimensions it uses. Unknown shapes fail with catalog.ErrInvalidShape.
func (c *Calculator) AreaM2(shape string, length, width float64) (float64, error) {
	def, err := c.shapes.Get(shape)
	if err != nil {
		return 0, err
	}
	return areaForShape(def, length, width), nil
}

// VolumeLiters computes the pond volume in liters as area × depth, converted
// from cubic meters. Unknown shapes fail with catalog.ErrInvalidShape.
func (c *Calculator) VolumeLiters(dims domain.PondDimensions) (float64, error) {
	area, err := c.AreaM2(dims.Shape, dims.LengthM, dims.WidthM)
	if err != nil {
		return 0, err
	}

	volumeM3 := area * dims.DepthM
	if volumeM3 <= 0 {
		return 0, fmt.Errorf("%w: shape %q, %.3f m3", ErrNonPositiveVolume, dims.Shape, volumeM3)
	}

	return volumeM3 * LitersPerCubicMeter, nil
}

// =============================================================================
// Formula Dispatch
// =============================================================================

// areaForShape dispatches on the shape's declared formula type. The catalog
// multiplier is applied uniformly; exact shapes carry multiplier 1.0.
func areaForShape(def catalog.ShapeDefinition, length, width float64) float64 {
	var area float64

	switch def.FormulaType {
	case catalog.FormulaSimple:
		area = length * width
	case catalog.FormulaCircular:
		// Width is the diameter.
		area = math.Pi * (width / 2) * (width / 2)
	case catalog.FormulaElliptical:
		area = math.Pi * (length / 2) * (width / 2)
	case catalog.FormulaTriangular:
		area = 0.5 * length * width
	case catalog.FormulaPolygon:
		area = polygonArea(def, width)
	case catalog.FormulaApproximation:
		area = length * width
	default:
		// Unreachable for a validated catalog.
		area = length * width
	}

	return area * def.Multiplier
}

// polygonArea resolves the regular polygon variant from the shape's declared
// area formula. Width is the side length.
func polygonArea(def catalog.ShapeDefinition, side float64) float64 {
	formula := strings.ToLower(def.AreaFormula)
	switch {
	case strings.Contains(formula, "hexagonal"):
		return (3 * math.Sqrt(3) / 2) * side * side
	case strings.Contains(formula, "octagonal"):
		return 2 * (1 + math.Sqrt2) * side * side
	default:
		// Unknown polygon variant: treat the bounding box as square.
		return side * side
	}
}
