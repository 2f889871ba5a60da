package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/farmfresh/inventory-api/internal/inventory"
)

// fakeStore is an in-memory Store preserving insertion order, used by the
// service and handler tests.
type fakeStore struct {
	mu      sync.Mutex
	order   []string
	records map[string]inventory.Record
	failAll bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]inventory.Record{}}
}

var errStoreDown = errors.New("store unavailable")

func (s *fakeStore) Create(_ context.Context, rec inventory.Record) (inventory.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return inventory.Record{}, errStoreDown
	}
	if _, ok := s.records[rec.ProductID]; ok {
		return inventory.Record{}, inventory.ErrDuplicateID
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.records[rec.ProductID] = rec
	s.order = append(s.order, rec.ProductID)
	return rec, nil
}

func (s *fakeStore) List(_ context.Context) ([]inventory.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errStoreDown
	}
	out := make([]inventory.Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *fakeStore) GetByProductID(_ context.Context, productID string) (inventory.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return inventory.Record{}, errStoreDown
	}
	rec, ok := s.records[productID]
	if !ok {
		return inventory.Record{}, inventory.ErrNotFound
	}
	return rec, nil
}

func (s *fakeStore) UpdateByProductID(_ context.Context, productID string, rec inventory.Record) (inventory.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return inventory.Record{}, errStoreDown
	}
	existing, ok := s.records[productID]
	if !ok {
		return inventory.Record{}, inventory.ErrNotFound
	}
	rec.ProductID = productID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	s.records[productID] = rec
	return rec, nil
}

func (s *fakeStore) DeleteByProductID(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errStoreDown
	}
	if _, ok := s.records[productID]; !ok {
		return inventory.ErrNotFound
	}
	delete(s.records, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
