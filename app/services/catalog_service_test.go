package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/services"
)

func seededCatalog(t *testing.T) (*services.CatalogService, *repositories.MemoryProductStore) {
	t.Helper()

	store := repositories.NewMemoryProductStore()
	svc := services.NewCatalogService(store)
	require.NoError(t, svc.EnsureSeeded(context.Background()))
	return svc, store
}

func TestEnsureSeeded_FillsEmptyStore(t *testing.T) {
	_, store := seededCatalog(t)

	n, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	svc, store := seededCatalog(t)

	require.NoError(t, svc.EnsureSeeded(context.Background()))

	n, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n, "re-seeding an already seeded store must not add records")
}

func TestEnsureSeeded_UnavailableIsSilentNoop(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.SetAvailable(false)

	svc := services.NewCatalogService(store)
	assert.NoError(t, svc.EnsureSeeded(context.Background()))

	store.SetAvailable(true)
	n, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestListProducts_CategoryMatchIsExactFold(t *testing.T) {
	svc, _ := seededCatalog(t)

	views, err := svc.ListProducts(context.Background(), "men", "")
	require.NoError(t, err)

	require.Len(t, views, 1, `"men" must match only category "Men", not "Women"`)
	assert.Equal(t, "Men", views[0].Category)
}

func TestListProducts_QuerySearchesNameDescriptionTags(t *testing.T) {
	svc, _ := seededCatalog(t)
	ctx := context.Background()

	cases := []struct {
		query string
		want  string
	}{
		{"NEON", "CTRL-Z Oversized Tee — Neon Grid"},          // name
		{"magnetic", "CTRL-Z Tech Cargo — Midnight"},          // description
		{"cropped", "CTRL-Z Cropped Hoodie — Crimson Pulse"}, // tag
	}

	for _, tc := range cases {
		views, err := svc.ListProducts(ctx, "", tc.query)
		require.NoError(t, err, tc.query)
		require.NotEmpty(t, views, tc.query)
		assert.Equal(t, tc.want, views[0].Name, tc.query)
	}
}

func TestListProducts_FiltersCombineWithAnd(t *testing.T) {
	svc, _ := seededCatalog(t)
	ctx := context.Background()

	// "hoodie" matches the Women's hoodie; restricting to Men must empty it.
	views, err := svc.ListProducts(ctx, "Men", "hoodie")
	require.NoError(t, err)
	assert.Empty(t, views)

	views, err = svc.ListProducts(ctx, "Women", "hoodie")
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestListProducts_NeverExceedsLimit(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	svc := services.NewCatalogService(store)

	var many []models.Product
	for i := 0; i < 60; i++ {
		many = append(many, models.Product{Name: "Tee", Description: "d", Price: 1, Category: "Unisex"})
	}
	require.NoError(t, store.InsertMany(context.Background(), many))

	views, err := svc.ListProducts(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, views, 48)
}

func TestListProducts_DegradedIgnoresFilters(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.SetAvailable(false)
	svc := services.NewCatalogService(store)

	// Filters that would match nothing still yield the fixed fallback.
	views, err := svc.ListProducts(context.Background(), "Men", "x")
	require.NoError(t, err)

	require.Len(t, views, 1)
	fallback := models.NewProductView(models.FallbackProduct())
	assert.Equal(t, fallback.Name, views[0].Name)
	assert.Equal(t, fallback.Category, views[0].Category)
	assert.Equal(t, fallback.Stock, views[0].Stock)
	assert.Equal(t, fallback.Tags, views[0].Tags)
}

func TestGetProduct_DegradedIgnoresID(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	store.SetAvailable(false)
	svc := services.NewCatalogService(store)

	view, err := svc.GetProduct(context.Background(), "definitely-not-an-id")
	require.NoError(t, err)
	assert.Equal(t, "CTRL-Z Oversized Tee — Neon Grid", view.Name)
}

func TestGetProduct_InvalidID(t *testing.T) {
	svc, _ := seededCatalog(t)

	_, err := svc.GetProduct(context.Background(), "not-a-valid-id")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _ := seededCatalog(t)

	_, err := svc.GetProduct(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestGetProduct_Found(t *testing.T) {
	svc, store := seededCatalog(t)
	ctx := context.Background()

	all, err := store.Find(ctx, repositories.Filter{}, 48)
	require.NoError(t, err)

	view, err := svc.GetProduct(ctx, all[1].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, all[1].ID.Hex(), view.ID)
	assert.Equal(t, all[1].Name, view.Name)
}

func TestGetProduct_SerializesDefaults(t *testing.T) {
	store := repositories.NewMemoryProductStore()
	svc := services.NewCatalogService(store)
	ctx := context.Background()

	bare := models.Product{Name: "Plain Tee", Description: "Just a tee.", Price: 19, Category: "Unisex"}
	require.NoError(t, store.InsertMany(ctx, []models.Product{bare}))

	all, err := store.Find(ctx, repositories.Filter{}, 1)
	require.NoError(t, err)

	view, err := svc.GetProduct(ctx, all[0].ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, models.DefaultSizes, view.Sizes)
	assert.Equal(t, []string{}, view.Images)
	assert.Equal(t, []string{}, view.Tags)
	assert.Equal(t, 0, view.Stock)
}
