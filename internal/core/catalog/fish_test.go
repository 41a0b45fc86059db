package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFishCatalog_Valid(t *testing.T) {
	doc := []byte(`
fish_species:
  goldfish:
    name: Goldfish
    adult_length_cm: 20
    bioload_factor: 1.0
    min_liters_per_fish: 75
  koi:
    name: Koi
    adult_length_cm: 60
    bioload_factor: 2.5
    min_liters_per_fish: 950
`)

	fish, err := ParseFishCatalog(doc)
	require.NoError(t, err)

	assert.Equal(t, 2, fish.Len())
	assert.Equal(t, []string{"goldfish", "koi"}, fish.Keys())
	assert.True(t, fish.Exists("KOI"))

	koi, err := fish.Get("koi")
	require.NoError(t, err)
	assert.Equal(t, "Koi", koi.Name)
	assert.Equal(t, 2.5, koi.BioloadFactor)
	assert.Equal(t, 950.0, koi.MinLitersPerFish)

	_, err = fish.Get("shark")
	assert.ErrorIs(t, err, ErrInvalidSpecies)
}

func TestParseFishCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"empty input", "", ErrEmptyInput},
		{"bad yaml", "fish_species: [unclosed", ErrInvalidYAML},
		{"no species", "fish_species: {}", ErrNoSpecies},
		{
			"missing name",
			`
fish_species:
  goldfish:
    adult_length_cm: 20
    bioload_factor: 1.0
    min_liters_per_fish: 75
`,
			ErrInvalidCatalogData,
		},
		{
			"missing bioload factor",
			`
fish_species:
  goldfish:
    name: Goldfish
    adult_length_cm: 20
    min_liters_per_fish: 75
`,
			ErrInvalidCatalogData,
		},
		{
			"non-positive liters per fish",
			`
fish_species:
  goldfish:
    name: Goldfish
    adult_length_cm: 20
    bioload_factor: 1.0
    min_liters_per_fish: 0
`,
			ErrInvalidCatalogData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFishCatalog([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultFishCatalog(t *testing.T) {
	fish, err := DefaultFishCatalog()
	require.NoError(t, err)

	goldfish, err := fish.Get("goldfish")
	require.NoError(t, err)
	assert.Equal(t, 1.0, goldfish.BioloadFactor)
	assert.Equal(t, 75.0, goldfish.MinLitersPerFish)

	assert.GreaterOrEqual(t, fish.Len(), 10)
	assert.Len(t, fish.All(), fish.Len())
}
