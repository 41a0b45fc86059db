// Package stocking derives bioload, required water volume, and per-species
// stocking ceilings from a fish stock and the species catalog.
// This is part of the Functional Core - all functions are pure with no I/O.
package stocking

import (
	"fmt"
	"math"

	"github.com/PartTimeLegend/pond-planner/internal/core/catalog"
	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

// =============================================================================
// Calculator
// =============================================================================

// Calculator computes stocking figures against an immutable fish catalog.
type Calculator struct {
	fish *catalog.FishCatalog
}

// NewCalculator creates a stocking calculator over the given fish catalog.
func NewCalculator(fish *catalog.FishCatalog) *Calculator {
	return &Calculator{fish: fish}
}

// Bioload sums quantity × bioload_factor across the stock. An empty stock has
// bioload zero. Unknown species fail with catalog.ErrInvalidSpecies.
func (c *Calculator) Bioload(stock domain.FishStock) (float64, error) {
	total := 0.0
	for key, qty := range stock {
		if qty <= 0 {
			continue
		}
		species, err := c.fish.Get(key)
		if err != nil {
			return 0, err
		}
		total += species.BioloadFactor * float64(qty)
	}
	return total, nil
}

// RequiredVolumeLiters sums quantity × min_liters_per_fish across the stock.
// An empty stock requires zero liters.
func (c *Calculator) RequiredVolumeLiters(stock domain.FishStock) (float64, error) {
	total := 0.0
	for key, qty := range stock {
		if qty <= 0 {
			continue
		}
		species, err := c.fish.Get(key)
		if err != nil {
			return 0, err
		}
		total += species.MinLitersPerFish * float64(qty)
	}
	return total, nil
}

// MaxStock returns how many individuals of one species the given volume could
// hold if the pond were dedicated to that species alone. This is an advisory
// ceiling, not a joint allocation across species.
func (c *Calculator) MaxStock(speciesKey string, availableLiters float64) (int, error) {
	species, err := c.fish.Get(speciesKey)
	if err != nil {
		return 0, err
	}
	if species.MinLitersPerFish <= 0 {
		// Guarded at catalog load time; never divide by a non-positive value.
		return 0, fmt.Errorf("%w: species %q has non-positive min_liters_per_fish",
			catalog.ErrInvalidCatalogData, speciesKey)
	}
	if availableLiters <= 0 {
		return 0, nil
	}
	return int(math.Floor(availableLiters / species.MinLitersPerFish)), nil
}

// Recommendations returns the advisory per-species ceilings for every species
// in the catalog, keyed by display name.
func (c *Calculator) Recommendations(volumeLiters float64) (map[string]int, error) {
	if volumeLiters <= 0 {
		return nil, fmt.Errorf("pond volume must be positive, got %g liters", volumeLiters)
	}

	recommendations := make(map[string]int, c.fish.Len())
	for key, species := range c.fish.All() {
		maxCount, err := c.MaxStock(key, volumeLiters)
		if err != nil {
			return nil, err
		}
		recommendations[species.Name] = maxCount
	}
	return recommendations, nil
}

// IsAdequatelyStocked reports whether the pond volume covers the volume the
// current stock requires. An empty stock is always adequately housed.
func IsAdequatelyStocked(pondVolumeLiters, requiredVolumeLiters float64) bool {
	return pondVolumeLiters >= requiredVolumeLiters
}
