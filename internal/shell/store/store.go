package store

import (
	"context"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for saved pond configurations.
// Records are keyed by the slug of the pond name; saving under an existing
// slug overwrites the record wholesale.
type Store interface {
	// SavePond inserts or replaces the record for pond.Slug.
	SavePond(ctx context.Context, pond *domain.SavedPond) error

	// GetPond returns the record for a slug, or ErrNotFound.
	GetPond(ctx context.Context, slug string) (*domain.SavedPond, error)

	// ListPonds returns all saved ponds, newest first.
	ListPonds(ctx context.Context) ([]domain.SavedPond, error)

	// DeletePond removes the record for a slug, or returns ErrNotFound.
	DeletePond(ctx context.Context, slug string) error

	// PondExists reports whether a record exists for a slug.
	PondExists(ctx context.Context, slug string) (bool, error)

	// Lifecycle
	Close() error
}
