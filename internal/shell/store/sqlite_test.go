package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func testPond(t *testing.T, name string) *domain.SavedPond {
	t.Helper()

	dims := domain.NewPondDimensions(5.0, 3.0, 1.5, "rectangular")

	pond, err := domain.NewSavedPond(name, "backyard koi pond", dims, domain.FishStock{
		"goldfish": 8,
		"koi":      2,
	})
	require.NoError(t, err)

	return pond
}

func TestSavePondAndGetPond(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	pond := testPond(t, "Garden Pond")
	require.NoError(t, s.SavePond(ctx, pond))

	got, err := s.GetPond(ctx, pond.Slug)
	require.NoError(t, err)

	assert.Equal(t, pond.ReferenceID, got.ReferenceID)
	assert.Equal(t, "Garden Pond", got.Name)
	assert.Equal(t, "garden-pond", got.Slug)
	assert.Equal(t, "backyard koi pond", got.Description)
	assert.Equal(t, pond.Dimensions, got.Dimensions)
	assert.Equal(t, pond.FishStock, got.FishStock)
	assert.Equal(t, pond.CreatedAt.Format(time.RFC3339), got.CreatedAt.Format(time.RFC3339))
}

func TestSavePondOverwritePreservesCreatedAt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	pond := testPond(t, "Garden Pond")
	pond.CreatedAt = pond.CreatedAt.Add(-24 * time.Hour)
	pond.UpdatedAt = pond.CreatedAt
	require.NoError(t, s.SavePond(ctx, pond))

	updated := testPond(t, "Garden Pond")
	updated.Description = "resized for sturgeon"
	updated.FishStock = domain.FishStock{"sterlet_sturgeon": 1}
	require.NoError(t, s.SavePond(ctx, updated))

	got, err := s.GetPond(ctx, "garden-pond")
	require.NoError(t, err)

	assert.Equal(t, "resized for sturgeon", got.Description)
	assert.Equal(t, domain.FishStock{"sterlet_sturgeon": 1}, got.FishStock)
	assert.Equal(t, pond.CreatedAt.Format(time.RFC3339), got.CreatedAt.Format(time.RFC3339))
	assert.Equal(t, updated.UpdatedAt.Format(time.RFC3339), got.UpdatedAt.Format(time.RFC3339))

	ponds, err := s.ListPonds(ctx)
	require.NoError(t, err)
	assert.Len(t, ponds, 1)
}

func TestSavePondEmptyStock(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	pond := testPond(t, "Empty Pond")
	pond.FishStock = nil
	require.NoError(t, s.SavePond(ctx, pond))

	got, err := s.GetPond(ctx, "empty-pond")
	require.NoError(t, err)
	assert.Empty(t, got.FishStock)
}

func TestGetPondNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetPond(context.Background(), "no-such-pond")
	assert.ErrorIs(t, err, ErrNotFound)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "GetPond", storeErr.Op)
	assert.Equal(t, "no-such-pond", storeErr.Slug)
}

func TestListPondsNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	older := testPond(t, "Older Pond")
	older.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	require.NoError(t, s.SavePond(ctx, older))

	newer := testPond(t, "Newer Pond")
	require.NoError(t, s.SavePond(ctx, newer))

	ponds, err := s.ListPonds(ctx)
	require.NoError(t, err)
	require.Len(t, ponds, 2)
	assert.Equal(t, "newer-pond", ponds[0].Slug)
	assert.Equal(t, "older-pond", ponds[1].Slug)
}

func TestListPondsEmpty(t *testing.T) {
	s := setupTestStore(t)

	ponds, err := s.ListPonds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ponds)
}

func TestDeletePond(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	pond := testPond(t, "Garden Pond")
	require.NoError(t, s.SavePond(ctx, pond))
	require.NoError(t, s.DeletePond(ctx, "garden-pond"))

	_, err := s.GetPond(ctx, "garden-pond")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePondNotFound(t *testing.T) {
	s := setupTestStore(t)

	err := s.DeletePond(context.Background(), "no-such-pond")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPondExists(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	exists, err := s.PondExists(ctx, "garden-pond")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.SavePond(ctx, testPond(t, "Garden Pond")))

	exists, err = s.PondExists(ctx, "garden-pond")
	require.NoError(t, err)
	assert.True(t, exists)
}
