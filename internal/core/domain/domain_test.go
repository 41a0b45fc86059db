package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "garden", "garden"},
		{"spaces to hyphens", "My Garden Pond", "my-garden-pond"},
		{"underscores to hyphens", "koi_pond", "koi-pond"},
		{"drops punctuation", "Koi Pond 2.0!", "koi-pond-20"},
		{"keeps hyphens", "figure-8 pond", "figure-8-pond"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("My Garden Pond"))
	assert.ErrorIs(t, ValidateName(""), ErrNameRequired)
	assert.ErrorIs(t, ValidateName("ab"), ErrNameTooShort)
	assert.ErrorIs(t, ValidateName(string(make([]byte, 101))), ErrNameTooLong)
	assert.ErrorIs(t, ValidateName("pond!"), ErrNameInvalidChars)
}

func TestNewPondDimensions_NormalizesShape(t *testing.T) {
	dims := NewPondDimensions(5.0, 3.0, 1.5, "  Rectangular ")
	assert.Equal(t, "rectangular", dims.Shape)
	assert.False(t, dims.IsZero())
	assert.True(t, PondDimensions{}.IsZero())
}

func TestFishStock_Clone(t *testing.T) {
	stock := FishStock{"goldfish": 5, "koi": 2}
	clone := stock.Clone()
	clone["goldfish"] = 99

	assert.Equal(t, 5, stock["goldfish"])
	assert.Equal(t, 7, stock.Total())
}

func TestFishStock_Prune(t *testing.T) {
	stock := FishStock{"goldfish": 5, "koi": 0, "tench": -1}
	stock.Prune()

	assert.Equal(t, FishStock{"goldfish": 5}, stock)
}

func TestNewSavedPond(t *testing.T) {
	dims := NewPondDimensions(5.0, 3.0, 1.5, "rectangular")
	stock := FishStock{"goldfish": 10}

	pond, err := NewSavedPond("My Garden Pond", "backyard build", dims, stock)
	require.NoError(t, err)

	assert.Equal(t, "my-garden-pond", pond.Slug)
	assert.Contains(t, pond.ReferenceID, "pond_")
	assert.Equal(t, dims, pond.Dimensions)
	assert.False(t, pond.CreatedAt.IsZero())

	// Snapshot is detached from the caller's stock.
	stock["goldfish"] = 1
	assert.Equal(t, 10, pond.FishStock["goldfish"])
}

func TestNewSavedPond_InvalidName(t *testing.T) {
	_, err := NewSavedPond("", "", PondDimensions{}, nil)
	assert.ErrorIs(t, err, ErrNameRequired)
}
