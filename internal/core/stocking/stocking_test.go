package stocking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartTimeLegend/pond-planner/internal/core/catalog"
	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	fish, err := catalog.DefaultFishCatalog()
	require.NoError(t, err)
	return NewCalculator(fish)
}

func TestBioload(t *testing.T) {
	calc := newTestCalculator(t)

	// 5 goldfish × 1.0 + 2 koi × 2.5 = 10.0
	bioload, err := calc.Bioload(domain.FishStock{"goldfish": 5, "koi": 2})
	require.NoError(t, err)
	assert.Equal(t, 10.0, bioload)
}

func TestBioload_EmptyStock(t *testing.T) {
	calc := newTestCalculator(t)

	bioload, err := calc.Bioload(domain.FishStock{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, bioload)
}

func TestBioload_UnknownSpecies(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.Bioload(domain.FishStock{"shark": 1})
	assert.ErrorIs(t, err, catalog.ErrInvalidSpecies)
}

func TestBioload_SkipsNonPositiveQuantities(t *testing.T) {
	calc := newTestCalculator(t)

	bioload, err := calc.Bioload(domain.FishStock{"goldfish": 5, "koi": 0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, bioload)
}

func TestRequiredVolumeLiters(t *testing.T) {
	calc := newTestCalculator(t)

	// 5 goldfish × 75 + 2 koi × 950 = 2275
	required, err := calc.RequiredVolumeLiters(domain.FishStock{"goldfish": 5, "koi": 2})
	require.NoError(t, err)
	assert.Equal(t, 2275.0, required)

	empty, err := calc.RequiredVolumeLiters(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty)
}

func TestMaxStock(t *testing.T) {
	calc := newTestCalculator(t)

	count, err := calc.MaxStock("goldfish", 5000)
	require.NoError(t, err)
	assert.Equal(t, 66, count) // floor(5000 / 75)

	count, err = calc.MaxStock("koi", 5000)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	count, err = calc.MaxStock("koi", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = calc.MaxStock("shark", 5000)
	assert.ErrorIs(t, err, catalog.ErrInvalidSpecies)
}

func TestRecommendations(t *testing.T) {
	calc := newTestCalculator(t)

	recs, err := calc.Recommendations(5000)
	require.NoError(t, err)

	assert.Equal(t, 66, recs["Goldfish"])
	assert.Equal(t, 5, recs["Koi"])
	assert.Len(t, recs, 10)

	_, err = calc.Recommendations(0)
	assert.Error(t, err)
}

func TestIsAdequatelyStocked(t *testing.T) {
	assert.True(t, IsAdequatelyStocked(5000, 2275))
	assert.True(t, IsAdequatelyStocked(2275, 2275)) // exactly adequate
	assert.False(t, IsAdequatelyStocked(2000, 2275))

	// Empty stock is adequate for any non-negative volume.
	assert.True(t, IsAdequatelyStocked(0, 0))
	assert.True(t, IsAdequatelyStocked(100, 0))
}
