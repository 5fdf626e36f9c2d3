package mocks

import (
	"context"

	"inventory-bridge/core/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) Scan(ctx context.Context) ([]store.PurchaseOrder, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]store.PurchaseOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Put(ctx context.Context, po store.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}
