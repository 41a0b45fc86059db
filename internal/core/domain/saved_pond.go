package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SavedPond
// =============================================================================

// SavedPond is a named pond configuration persisted by the store. A record is
// keyed by the slug of its name; re-saving under the same name replaces the
// record wholesale.
type SavedPond struct {
	ID          int            `json:"-"`
	ReferenceID string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Dimensions  PondDimensions `json:"dimensions"`
	FishStock   FishStock      `json:"fish_stock"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewSavedPond creates a saved pond record from the current planning state.
// Returns an error if the name fails validation.
func NewSavedPond(name, description string, dims PondDimensions, stock FishStock) (*SavedPond, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &SavedPond{
		ReferenceID: "pond_" + uuid.New().String()[:8],
		Name:        name,
		Slug:        Slugify(name),
		Description: description,
		Dimensions:  dims,
		FishStock:   stock.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// =============================================================================
// Validation Functions (Pure)
// =============================================================================

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)

// ValidateName validates a saved pond name.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) < 3 {
		return ErrNameTooShort
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	if !nameRegex.MatchString(name) {
		return ErrNameInvalidChars
	}
	return nil
}
