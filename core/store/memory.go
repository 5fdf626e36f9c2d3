package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	orders map[string]PurchaseOrder
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]PurchaseOrder)}
}

// Scan returns every tracked purchase order sorted by order number for
// deterministic output.
func (s *MemoryStore) Scan(ctx context.Context) ([]PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]PurchaseOrder, 0, len(s.orders))
	for _, po := range s.orders {
		orders = append(orders, po)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Number < orders[j].Number
	})
	return orders, nil
}

// Put inserts or replaces the record keyed by po.Number.
func (s *MemoryStore) Put(ctx context.Context, po PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[po.Number] = po
	return nil
}

// Delete removes the record for the given order number.
func (s *MemoryStore) Delete(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, number)
	return nil
}

// Len reports the number of tracked orders.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// Get returns the tracked record for an order number, if present.
func (s *MemoryStore) Get(number string) (PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	po, ok := s.orders[number]
	return po, ok
}
