package seeders

import (
	"context"

	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/services"
)

func init() {
	Register("products", seedProducts)
}

// seedProducts fills an empty catalog with the demo records. Delegates to the
// catalog service so the emptiness guard lives in one place.
func seedProducts(ctx context.Context, store repositories.ProductStore) error {
	return services.NewCatalogService(store).EnsureSeeded(ctx)
}
