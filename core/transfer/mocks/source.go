package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of transfer.Source
type Source struct {
	mock.Mock
}

func (m *Source) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
