// Package repositories defines the product store contract consumed by the
// catalog service, plus its MongoDB implementation.
package repositories

import (
	"context"
	"errors"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
)

var (
	// ErrStoreUnavailable means no live connection to the backing collection
	// exists. The catalog service recovers from it by serving fallback data;
	// it is never surfaced to clients.
	ErrStoreUnavailable = errors.New("product store unavailable")

	// ErrInvalidID means the supplied identifier is not well-formed for the
	// store's identifier space.
	ErrInvalidID = errors.New("invalid product id")
)

// Filter describes catalog matching. The semantics are part of the store
// contract so they stay identical whether a store compiles them to a query
// language or scans in process:
//
//   - Category, when set, must equal the stored category ignoring case
//     (exact match, not substring).
//   - Query, when set, must appear as a case-insensitive substring in the
//     name, the description, or any tag.
//   - Both conditions combine with AND.
type Filter struct {
	Category string
	Query    string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Query == ""
}

// ProductStore is the persistence boundary of the catalog.
type ProductStore interface {
	// Available reports whether a live connection to the backing collection
	// exists. All other operations fail with ErrStoreUnavailable when it
	// returns false.
	Available() bool

	// CountAll returns the number of stored records.
	CountAll(ctx context.Context) (int64, error)

	// InsertMany inserts the given records as one batch.
	InsertMany(ctx context.Context, products []models.Product) error

	// Find returns up to limit records matching filter. Ordering is
	// store-defined.
	Find(ctx context.Context, filter Filter, limit int64) ([]models.Product, error)

	// FindByID returns the record with the given id, nil when the id is
	// well-formed but absent, and ErrInvalidID when it is malformed.
	FindByID(ctx context.Context, id string) (*models.Product, error)
}
