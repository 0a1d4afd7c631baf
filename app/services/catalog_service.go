// Package services holds the application services behind the HTTP
// controllers. CatalogService is the core of the system: it decides how
// product data is seeded, filtered, cached, degraded and serialized.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/pkg/cache"
	"github.com/ctrlz-wear/ctrlz-api/pkg/logger"
)

// ErrProductNotFound means the id was well-formed but no record matches it.
var ErrProductNotFound = errors.New("product not found")

const (
	// listLimit caps every product listing; there is no pagination beyond it.
	listLimit = 48

	cacheTTL = 30 * time.Second
)

// CatalogService coordinates seeding, filter construction, fallback
// substitution and serialization over an injected ProductStore. It holds no
// state of its own beyond the store handle.
type CatalogService struct {
	store repositories.ProductStore
}

func NewCatalogService(store repositories.ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

// EnsureSeeded inserts the demo catalog when the collection is empty and is
// a silent no-op when the store is unavailable. It runs at startup and from
// the seed command, never on the request path, so concurrent requests
// cannot race the emptiness check. Safe to call repeatedly: a non-empty
// collection is left untouched.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	if !s.store.Available() {
		return nil
	}

	n, err := s.store.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("catalog: count before seed: %w", err)
	}
	if n > 0 {
		return nil
	}

	seed := models.SeedProducts()
	if err := s.store.InsertMany(ctx, seed); err != nil {
		return fmt.Errorf("catalog: insert seed: %w", err)
	}

	logger.Info("seeded demo catalog", "count", len(seed))
	return nil
}

// ListProducts returns up to 48 product views matching the optional category
// (exact, case-insensitive) and search query (case-insensitive substring over
// name, description and tags).
//
// When the store is unavailable it returns the single static fallback record
// and ignores both filters. That mirrors the storefront's demo-mode contract:
// degraded responses trade filter correctness for availability.
func (s *CatalogService) ListProducts(ctx context.Context, category, query string) ([]models.ProductView, error) {
	if !s.store.Available() {
		return []models.ProductView{models.NewProductView(models.FallbackProduct())}, nil
	}

	key := listCacheKey(category, query)
	var cached []models.ProductView
	if cache.Get(key, &cached) {
		return cached, nil
	}

	filter := repositories.Filter{Category: category, Query: query}
	products, err := s.store.Find(ctx, filter, listLimit)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, models.NewProductView(p))
	}

	if err := cache.Set(key, views, cacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("cache product list", "error", err)
	}

	return views, nil
}

// GetProduct returns the view for one product. A malformed id yields
// repositories.ErrInvalidID, a well-formed but absent one ErrProductNotFound.
// When the store is unavailable the static fallback view is returned and the
// id is ignored, same degraded contract as ListProducts.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.ProductView, error) {
	if !s.store.Available() {
		return models.NewProductView(models.FallbackProduct()), nil
	}

	key := "product:" + id
	var cached models.ProductView
	if cache.Get(key, &cached) {
		return cached, nil
	}

	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.ProductView{}, fmt.Errorf("catalog: get product: %w", err)
	}
	if p == nil {
		return models.ProductView{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	view := models.NewProductView(*p)
	if err := cache.Set(key, view, cacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("cache product", "error", err, "id", id)
	}

	return view, nil
}

func listCacheKey(category, query string) string {
	return "products:" + category + ":" + query
}
