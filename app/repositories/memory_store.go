package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
)

// MemoryProductStore is an in-process ProductStore for tests and for running
// the API without MongoDB. It interprets Filter with a linear scan using the
// same matching semantics the Mongo adapter compiles to $regex, which is the
// point of keeping those semantics in the store contract.
type MemoryProductStore struct {
	mu        sync.RWMutex
	available bool
	products  []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{available: true}
}

// SetAvailable toggles the simulated connection state.
func (s *MemoryProductStore) SetAvailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = v
}

func (s *MemoryProductStore) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

func (s *MemoryProductStore) CountAll(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.available {
		return 0, ErrStoreUnavailable
	}
	return int64(len(s.products)), nil
}

func (s *MemoryProductStore) InsertMany(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.available {
		return ErrStoreUnavailable
	}

	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		s.products = append(s.products, p)
	}
	return nil
}

func (s *MemoryProductStore) Find(ctx context.Context, filter Filter, limit int64) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.available {
		return nil, ErrStoreUnavailable
	}

	var out []models.Product
	for _, p := range s.products {
		if int64(len(out)) >= limit {
			break
		}
		if filter.matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.available {
		return nil, ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	for _, p := range s.products {
		if p.ID == oid {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

// matches applies the Filter contract to one record.
func (f Filter) matches(p models.Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if strings.Contains(strings.ToLower(p.Name), q) {
			return true
		}
		if strings.Contains(strings.ToLower(p.Description), q) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	}

	return true
}
