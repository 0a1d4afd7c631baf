// Package seeders provides a registry of named seed functions over the
// product store. Seeders run once at server startup and on demand via the
// seed command, never on the request path.
package seeders

import (
	"context"
	"fmt"
	"sync"

	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/pkg/logger"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, store repositories.ProductStore) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the registry. Call from init() in seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order, stopping on
// the first error.
func RunAll(ctx context.Context, store repositories.ProductStore) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		logger.Info("running seeder", "name", e.name)
		if err := e.fn(ctx, store); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
	}
	return nil
}
