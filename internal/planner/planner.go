// Package planner composes the core calculators, the stock manager and the
// pond store into the single facade the API and CLI surfaces talk to. It is
// the Imperative Shell boundary: all persistence I/O funnels through here,
// while every computation is delegated to the pure core packages.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/PartTimeLegend/pond-planner/internal/core/catalog"
	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
	"github.com/PartTimeLegend/pond-planner/internal/core/equipment"
	"github.com/PartTimeLegend/pond-planner/internal/core/report"
	"github.com/PartTimeLegend/pond-planner/internal/core/stock"
	"github.com/PartTimeLegend/pond-planner/internal/core/stocking"
	"github.com/PartTimeLegend/pond-planner/internal/core/validation"
	"github.com/PartTimeLegend/pond-planner/internal/core/volume"
	"github.com/PartTimeLegend/pond-planner/internal/shell/store"
)

// ErrDimensionsNotSet is returned by every computation that needs pond
// dimensions before SetDimensions has succeeded.
var ErrDimensionsNotSet = errors.New("pond dimensions have not been set")

// =============================================================================
// Planner
// =============================================================================

// Planner is the single entry point for one planning session. It is not safe
// for concurrent use; callers serialize access (the API handler does).
type Planner struct {
	shapes    *catalog.ShapeCatalog
	fish      *catalog.FishCatalog
	validator *validation.Validator
	volume    *volume.Calculator
	stocking  *stocking.Calculator
	stock     *stock.Manager
	store     store.Store

	dims    domain.PondDimensions
	dimsSet bool
}

// New creates a Planner over the given catalogs and store.
func New(shapes *catalog.ShapeCatalog, fish *catalog.FishCatalog, st store.Store) *Planner {
	validator := validation.New(shapes, fish)
	return &Planner{
		shapes:    shapes,
		fish:      fish,
		validator: validator,
		volume:    volume.NewCalculator(shapes),
		stocking:  stocking.NewCalculator(fish),
		stock:     stock.NewManager(validator),
		store:     st,
	}
}

// =============================================================================
// Dimensions
// =============================================================================

// SetDimensions validates and assigns the pond dimensions. Validation is
// all-or-nothing: on failure the previous dimensions remain in effect.
func (p *Planner) SetDimensions(length, width, depth float64, shape string) error {
	if err := p.validator.ValidateDimensions(length, width, depth, shape); err != nil {
		return err
	}
	p.dims = domain.NewPondDimensions(length, width, depth, shape)
	p.dimsSet = true
	return nil
}

// Dimensions returns the current dimensions and whether they have been set.
func (p *Planner) Dimensions() (domain.PondDimensions, bool) {
	return p.dims, p.dimsSet
}

// =============================================================================
// Catalog Listings
// =============================================================================

// AvailableShapes returns all shape keys in alphabetical order.
func (p *Planner) AvailableShapes() []string {
	return p.shapes.Keys()
}

// ShapesByCategory returns shape keys grouped by catalog category.
func (p *Planner) ShapesByCategory() map[string][]string {
	grouped := make(map[string][]string)
	for _, category := range p.shapes.Categories() {
		grouped[category] = p.shapes.ByCategory(category)
	}
	return grouped
}

// FishTypes returns all species keys in alphabetical order.
func (p *Planner) FishTypes() []string {
	return p.fish.Keys()
}

// Shape returns the catalog definition for a shape key.
func (p *Planner) Shape(key string) (catalog.ShapeDefinition, error) {
	return p.shapes.Get(key)
}

// Species returns the catalog entry for a species key.
func (p *Planner) Species(key string) (catalog.FishSpecies, error) {
	return p.fish.Get(key)
}

// =============================================================================
// Stock Management
// =============================================================================

// AddFish adds a quantity of one species to the pond stock.
func (p *Planner) AddFish(species string, quantity int) error {
	return p.stock.Add(species, quantity)
}

// RemoveFish removes a quantity of one species from the pond stock.
func (p *Planner) RemoveFish(species string, quantity int) error {
	return p.stock.Remove(species, quantity)
}

// AddFishBatch adds several species at once. The batch is validated as a
// whole first; any failure leaves the stock unchanged.
func (p *Planner) AddFishBatch(batch map[string]int) error {
	return p.stock.AddBatch(batch)
}

// FishStock returns a copy of the current stock.
func (p *Planner) FishStock() domain.FishStock {
	return p.stock.Stock()
}

// =============================================================================
// Calculations
// =============================================================================

// VolumeLiters returns the pond water volume in liters.
func (p *Planner) VolumeLiters() (float64, error) {
	if !p.dimsSet {
		return 0, ErrDimensionsNotSet
	}
	return p.volume.VolumeLiters(p.dims)
}

// RequiredVolumeLiters returns the volume the current stock needs.
func (p *Planner) RequiredVolumeLiters() (float64, error) {
	return p.stocking.RequiredVolumeLiters(p.stock.Stock())
}

// Bioload returns the total bioload of the current stock.
func (p *Planner) Bioload() (float64, error) {
	return p.stocking.Bioload(p.stock.Stock())
}

// IsAdequatelyStocked reports whether the pond volume covers the stock's
// required volume.
func (p *Planner) IsAdequatelyStocked() (bool, error) {
	volumeLiters, err := p.VolumeLiters()
	if err != nil {
		return false, err
	}
	required, err := p.RequiredVolumeLiters()
	if err != nil {
		return false, err
	}
	return stocking.IsAdequatelyStocked(volumeLiters, required), nil
}

// StockingRecommendations returns, per species display name, the maximum
// quantity the pond volume supports if stocked with that species alone.
func (p *Planner) StockingRecommendations() (map[string]int, error) {
	volumeLiters, err := p.VolumeLiters()
	if err != nil {
		return nil, err
	}
	return p.stocking.Recommendations(volumeLiters)
}

// =============================================================================
// Equipment
// =============================================================================

// PumpSize returns the recommended pump specification.
func (p *Planner) PumpSize() (equipment.PumpSpec, error) {
	volumeLiters, bioload, err := p.volumeAndBioload()
	if err != nil {
		return equipment.PumpSpec{}, err
	}
	return equipment.PumpSize(volumeLiters, bioload)
}

// FilterSize returns the recommended biological filter media volume in liters.
func (p *Planner) FilterSize() (float64, error) {
	volumeLiters, bioload, err := p.volumeAndBioload()
	if err != nil {
		return 0, err
	}
	return equipment.FilterSize(volumeLiters, bioload)
}

// UVWattage returns the recommended UV sterilizer wattage.
func (p *Planner) UVWattage() (int, error) {
	volumeLiters, bioload, err := p.volumeAndBioload()
	if err != nil {
		return 0, err
	}
	return equipment.UVWattage(volumeLiters, bioload)
}

// MechanicalFilter returns the recommended mechanical pre-filter grade.
func (p *Planner) MechanicalFilter() (string, error) {
	if !p.dimsSet {
		return "", ErrDimensionsNotSet
	}
	bioload, err := p.Bioload()
	if err != nil {
		return "", err
	}
	return equipment.MechanicalFilter(bioload)
}

func (p *Planner) volumeAndBioload() (float64, float64, error) {
	volumeLiters, err := p.VolumeLiters()
	if err != nil {
		return 0, 0, err
	}
	bioload, err := p.Bioload()
	if err != nil {
		return 0, 0, err
	}
	return volumeLiters, bioload, nil
}

// =============================================================================
// Report
// =============================================================================

// GenerateReport assembles and renders the full planning report.
func (p *Planner) GenerateReport() (string, error) {
	volumeLiters, err := p.VolumeLiters()
	if err != nil {
		return "", err
	}

	currentStock := p.stock.Stock()
	bioload, err := p.stocking.Bioload(currentStock)
	if err != nil {
		return "", err
	}
	required, err := p.stocking.RequiredVolumeLiters(currentStock)
	if err != nil {
		return "", err
	}

	pump, err := equipment.PumpSize(volumeLiters, bioload)
	if err != nil {
		return "", err
	}
	filterMedia, err := equipment.FilterSize(volumeLiters, bioload)
	if err != nil {
		return "", err
	}
	uvWatts, err := equipment.UVWattage(volumeLiters, bioload)
	if err != nil {
		return "", err
	}
	mechanical, err := equipment.MechanicalFilter(bioload)
	if err != nil {
		return "", err
	}

	recommendations, err := p.stocking.Recommendations(volumeLiters)
	if err != nil {
		return "", err
	}

	shapeDef, err := p.shapes.Get(p.dims.Shape)
	if err != nil {
		return "", err
	}

	return report.Render(report.Data{
		Dimensions:        p.dims,
		ShapeName:         shapeDef.Name,
		VolumeLiters:      volumeLiters,
		Stock:             p.stockLines(currentStock),
		RequiredLiters:    required,
		Bioload:           bioload,
		Adequate:          stocking.IsAdequatelyStocked(volumeLiters, required),
		Pump:              pump,
		FilterMediaLiters: filterMedia,
		UVWatts:           uvWatts,
		MechanicalFilter:  mechanical,
		Recommendations:   recommendations,
	}), nil
}

// stockLines resolves the stock to display names, sorted for stable output.
func (p *Planner) stockLines(currentStock domain.FishStock) []report.StockLine {
	lines := make([]report.StockLine, 0, len(currentStock))
	for key, quantity := range currentStock {
		name := key
		if species, err := p.fish.Get(key); err == nil {
			name = species.Name
		}
		lines = append(lines, report.StockLine{Name: name, Quantity: quantity})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}

// =============================================================================
// Persistence
// =============================================================================

// SavePond persists the current session under a name. Re-saving with a name
// that slugs to an existing record fully overwrites that record. The saved
// record is returned so callers learn the slug.
func (p *Planner) SavePond(ctx context.Context, name, description string) (*domain.SavedPond, error) {
	if !p.dimsSet {
		return nil, ErrDimensionsNotSet
	}

	pond, err := domain.NewSavedPond(name, description, p.dims, p.stock.Stock())
	if err != nil {
		return nil, err
	}
	if err := p.store.SavePond(ctx, pond); err != nil {
		return nil, err
	}
	return pond, nil
}

// LoadPond replaces the session's dimensions and stock with a saved record.
// The record is re-validated against the current catalogs, so a pond saved
// under a catalog that has since changed can fail to load.
func (p *Planner) LoadPond(ctx context.Context, name string) (*domain.SavedPond, error) {
	pond, err := p.store.GetPond(ctx, domain.Slugify(name))
	if err != nil {
		return nil, err
	}

	d := pond.Dimensions
	if err := p.validator.ValidateDimensions(d.LengthM, d.WidthM, d.DepthM, d.Shape); err != nil {
		return nil, fmt.Errorf("saved pond %q has invalid dimensions: %w", pond.Slug, err)
	}
	if err := p.stock.SetStock(pond.FishStock); err != nil {
		return nil, fmt.Errorf("saved pond %q has invalid stock: %w", pond.Slug, err)
	}

	p.dims = domain.NewPondDimensions(d.LengthM, d.WidthM, d.DepthM, d.Shape)
	p.dimsSet = true
	return pond, nil
}

// GetSavedPond fetches a saved record by name without touching the session.
func (p *Planner) GetSavedPond(ctx context.Context, name string) (*domain.SavedPond, error) {
	return p.store.GetPond(ctx, domain.Slugify(name))
}

// ListSavedPonds returns all saved ponds, newest first.
func (p *Planner) ListSavedPonds(ctx context.Context) ([]domain.SavedPond, error) {
	return p.store.ListPonds(ctx)
}

// DeleteSavedPond removes a saved pond by name.
func (p *Planner) DeleteSavedPond(ctx context.Context, name string) error {
	return p.store.DeletePond(ctx, domain.Slugify(name))
}

// PondExists reports whether a saved pond exists for a name.
func (p *Planner) PondExists(ctx context.Context, name string) (bool, error) {
	return p.store.PondExists(ctx, domain.Slugify(name))
}
