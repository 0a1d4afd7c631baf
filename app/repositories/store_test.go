package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
)

func TestMongoStore_NilHandleIsUnavailable(t *testing.T) {
	store := repositories.NewMongoProductStore(nil)
	ctx := context.Background()

	assert.False(t, store.Available())

	_, err := store.CountAll(ctx)
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)

	err = store.InsertMany(ctx, models.SeedProducts())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)

	_, err = store.Find(ctx, repositories.Filter{}, 48)
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)

	_, err = store.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)
}

func TestMemoryStore_FindByID(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	ctx := context.Background()

	require.NoError(t, store.InsertMany(ctx, models.SeedProducts()))

	all, err := store.Find(ctx, repositories.Filter{}, 48)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Stored id round-trips.
	got, err := store.FindByID(ctx, all[0].ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, all[0].Name, got.Name)

	// Well-formed but absent id: no record, no error.
	got, err = store.FindByID(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, got)

	// Malformed id.
	_, err = store.FindByID(ctx, "not-a-valid-id")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
}

func TestMemoryStore_FindHonorsLimit(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	ctx := context.Background()

	var many []models.Product
	for i := 0; i < 60; i++ {
		many = append(many, models.Product{Name: "Tee", Description: "d", Price: 1, Category: "Unisex"})
	}
	require.NoError(t, store.InsertMany(ctx, many))

	out, err := store.Find(ctx, repositories.Filter{}, 48)
	require.NoError(t, err)
	assert.Len(t, out, 48)
}

func TestMemoryStore_UnavailableToggle(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.SetAvailable(false)

	assert.False(t, store.Available())

	_, err := store.CountAll(context.Background())
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)
}
