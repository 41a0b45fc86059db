package catalog

// =============================================================================
// Formula Types
// =============================================================================

// FormulaType selects the surface area calculation for a pond shape.
type FormulaType string

const (
	FormulaSimple        FormulaType = "simple"
	FormulaCircular      FormulaType = "circular"
	FormulaElliptical    FormulaType = "elliptical"
	FormulaPolygon       FormulaType = "polygon"
	FormulaTriangular    FormulaType = "triangular"
	FormulaApproximation FormulaType = "approximation"
)

// IsValid checks if the formula type is recognized.
func (ft FormulaType) IsValid() bool {
	switch ft {
	case FormulaSimple, FormulaCircular, FormulaElliptical,
		FormulaPolygon, FormulaTriangular, FormulaApproximation:
		return true
	default:
		return false
	}
}

// =============================================================================
// Width Semantics
// =============================================================================

// WidthMeaning describes what the width dimension represents for a shape.
type WidthMeaning string

const (
	WidthIsWidth      WidthMeaning = "width"
	WidthIsDiameter   WidthMeaning = "diameter"
	WidthIsSideLength WidthMeaning = "side_length"
)

// IsValid checks if the width meaning is recognized.
func (wm WidthMeaning) IsValid() bool {
	switch wm {
	case WidthIsWidth, WidthIsDiameter, WidthIsSideLength:
		return true
	default:
		return false
	}
}

// =============================================================================
// ShapeDefinition
// =============================================================================

// ShapeDefinition describes the geometric formula parameters for one pond
// shape. Instances are immutable once loaded from the catalog document.
type ShapeDefinition struct {
	Key             string
	Name            string
	Description     string
	FormulaType     FormulaType
	AreaFormula     string // descriptive, e.g. "(3 * sqrt(3) / 2) * width^2"
	Multiplier      float64
	UsesLength      bool
	UsesWidth       bool
	WidthRepresents WidthMeaning
}

// DimensionLabel returns the user-facing name of the width dimension, taking
// its semantics into account (e.g. "diameter" for circular ponds).
func (s ShapeDefinition) DimensionLabel() string {
	switch s.WidthRepresents {
	case WidthIsDiameter:
		return "diameter"
	case WidthIsSideLength:
		return "side length"
	default:
		return "width"
	}
}

// =============================================================================
// FishSpecies
// =============================================================================

// FishSpecies describes the biological and space attributes of one species.
// Instances are immutable once loaded from the catalog document.
type FishSpecies struct {
	Key              string
	Name             string
	AdultLengthCM    float64
	BioloadFactor    float64
	MinLitersPerFish float64
}

// =============================================================================
// Validation Rules
// =============================================================================

// DimensionLimits holds bounds for the three pond dimensions in meters.
type DimensionLimits struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
}

// ShapeRule holds shape-specific validation overrides.
type ShapeRule struct {
	// MinDiameter is the minimum width for shapes where width represents a
	// diameter. Zero means no override.
	MinDiameter float64 `yaml:"min_diameter"`

	// MinSideLength is the minimum width for regular polygon shapes.
	// Zero means no override.
	MinSideLength float64 `yaml:"min_side_length"`
}

// ValidationRules holds the global and shape-specific dimension bounds loaded
// alongside the shape catalog.
type ValidationRules struct {
	MinDimensions DimensionLimits      `yaml:"min_dimensions"`
	MaxDimensions DimensionLimits      `yaml:"max_dimensions"`
	ShapeRules    map[string]ShapeRule `yaml:"shape_specific_rules"`

	// MaxFishQuantity caps a single stock mutation.
	MaxFishQuantity int `yaml:"max_fish_quantity"`
}
