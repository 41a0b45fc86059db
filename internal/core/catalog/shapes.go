package catalog

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Document Types
// =============================================================================

// shapeEntry mirrors one entry of the pond_shapes block in the YAML document.
type shapeEntry struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	FormulaType     string   `yaml:"formula_type"`
	AreaFormula     string   `yaml:"area_formula"`
	Multiplier      *float64 `yaml:"multiplier"`
	UsesLength      bool     `yaml:"uses_length"`
	UsesWidth       bool     `yaml:"uses_width"`
	WidthRepresents string   `yaml:"width_represents"`
}

// shapeDocument mirrors the full shape catalog document.
type shapeDocument struct {
	PondShapes      map[string]shapeEntry `yaml:"pond_shapes"`
	ShapeCategories map[string][]string   `yaml:"shape_categories"`
	ValidationRules ValidationRules       `yaml:"validation_rules"`
}

// =============================================================================
// ShapeCatalog
// =============================================================================

// ShapeCatalog is the immutable table of pond shape definitions, loaded once
// at startup and read-only for the process lifetime.
type ShapeCatalog struct {
	shapes     map[string]ShapeDefinition
	categories map[string][]string
	rules      ValidationRules
}

// Get returns the shape definition for a key. Lookup is case-insensitive.
func (c *ShapeCatalog) Get(key string) (ShapeDefinition, error) {
	shape, ok := c.shapes[strings.ToLower(key)]
	if !ok {
		return ShapeDefinition{}, fmt.Errorf("%w: %q (available: %s)",
			ErrInvalidShape, key, strings.Join(c.Keys(), ", "))
	}
	return shape, nil
}

// Exists reports whether a shape key is present in the catalog.
func (c *ShapeCatalog) Exists(key string) bool {
	_, ok := c.shapes[strings.ToLower(key)]
	return ok
}

// Keys returns all shape keys in alphabetical order.
func (c *ShapeCatalog) Keys() []string {
	keys := make([]string, 0, len(c.shapes))
	for k := range c.shapes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByCategory returns the shape keys belonging to a category. Lookup is
// case-insensitive; an unknown category yields an empty slice.
func (c *ShapeCatalog) ByCategory(category string) []string {
	keys := c.categories[strings.ToLower(category)]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Categories returns all category names in alphabetical order.
func (c *ShapeCatalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns the validation rules loaded with the catalog.
func (c *ShapeCatalog) Rules() ValidationRules {
	return c.rules
}

// Len returns the number of shapes in the catalog.
func (c *ShapeCatalog) Len() int {
	return len(c.shapes)
}

// =============================================================================
// Parsing
// =============================================================================

// ParseShapeCatalog parses and validates a shape catalog document. Any
// malformed entry fails the whole parse with an error wrapping
// ErrInvalidCatalogData; callers are expected to treat this as fatal.
func ParseShapeCatalog(doc []byte) (*ShapeCatalog, error) {
	if len(strings.TrimSpace(string(doc))) == 0 {
		return nil, ErrEmptyInput
	}

	var parsed shapeDocument
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, NewParseError("", "failed to parse shape catalog", ErrInvalidYAML)
	}

	if len(parsed.PondShapes) == 0 {
		return nil, ErrNoShapes
	}

	shapes := make(map[string]ShapeDefinition, len(parsed.PondShapes))
	for key, entry := range parsed.PondShapes {
		shape, err := buildShape(strings.ToLower(key), entry)
		if err != nil {
			return nil, err
		}
		shapes[shape.Key] = shape
	}

	if err := validateRules(parsed.ValidationRules, shapes); err != nil {
		return nil, err
	}

	categories := make(map[string][]string, len(parsed.ShapeCategories))
	for category, keys := range parsed.ShapeCategories {
		lowered := make([]string, 0, len(keys))
		for _, k := range keys {
			k = strings.ToLower(k)
			if _, ok := shapes[k]; !ok {
				return nil, NewParseError(
					"shape_categories."+category,
					fmt.Sprintf("category references unknown shape %q", k),
					ErrInvalidCatalogData,
				)
			}
			lowered = append(lowered, k)
		}
		sort.Strings(lowered)
		categories[strings.ToLower(category)] = lowered
	}

	return &ShapeCatalog{
		shapes:     shapes,
		categories: categories,
		rules:      parsed.ValidationRules,
	}, nil
}

// buildShape validates one catalog entry and converts it to a ShapeDefinition.
func buildShape(key string, entry shapeEntry) (ShapeDefinition, error) {
	field := "pond_shapes." + key

	if entry.Name == "" {
		return ShapeDefinition{}, NewParseError(field, "missing required field 'name'", ErrInvalidCatalogData)
	}

	ft := FormulaType(entry.FormulaType)
	if !ft.IsValid() {
		return ShapeDefinition{}, NewParseError(field,
			fmt.Sprintf("unknown formula_type %q", entry.FormulaType), ErrInvalidCatalogData)
	}

	multiplier := 1.0
	if entry.Multiplier != nil {
		multiplier = *entry.Multiplier
	}
	if multiplier <= 0 {
		return ShapeDefinition{}, NewParseError(field,
			fmt.Sprintf("multiplier must be positive, got %v", multiplier), ErrInvalidCatalogData)
	}

	wm := WidthIsWidth
	if entry.WidthRepresents != "" {
		wm = WidthMeaning(entry.WidthRepresents)
		if !wm.IsValid() {
			return ShapeDefinition{}, NewParseError(field,
				fmt.Sprintf("unknown width_represents %q", entry.WidthRepresents), ErrInvalidCatalogData)
		}
	}

	if !entry.UsesWidth {
		return ShapeDefinition{}, NewParseError(field,
			"every shape must use the width dimension", ErrInvalidCatalogData)
	}

	return ShapeDefinition{
		Key:             key,
		Name:            entry.Name,
		Description:     entry.Description,
		FormulaType:     ft,
		AreaFormula:     entry.AreaFormula,
		Multiplier:      multiplier,
		UsesLength:      entry.UsesLength,
		UsesWidth:       entry.UsesWidth,
		WidthRepresents: wm,
	}, nil
}

// validateRules checks the validation_rules block for internal consistency.
func validateRules(rules ValidationRules, shapes map[string]ShapeDefinition) error {
	min, max := rules.MinDimensions, rules.MaxDimensions

	if min.Length < 0 || min.Width < 0 || min.Depth < 0 {
		return NewParseError("validation_rules.min_dimensions",
			"minimum dimensions cannot be negative", ErrInvalidCatalogData)
	}
	if max.Length < min.Length || max.Width < min.Width || max.Depth < min.Depth {
		return NewParseError("validation_rules.max_dimensions",
			"maximum dimensions must be at least the minimums", ErrInvalidCatalogData)
	}
	if rules.MaxFishQuantity < 0 {
		return NewParseError("validation_rules.max_fish_quantity",
			"max_fish_quantity cannot be negative", ErrInvalidCatalogData)
	}

	for key := range rules.ShapeRules {
		if _, ok := shapes[strings.ToLower(key)]; !ok {
			return NewParseError("validation_rules.shape_specific_rules",
				fmt.Sprintf("rule references unknown shape %q", key), ErrInvalidCatalogData)
		}
	}

	return nil
}
