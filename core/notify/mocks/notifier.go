package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Notifier is a mock implementation of notify.Notifier
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Publish(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}
