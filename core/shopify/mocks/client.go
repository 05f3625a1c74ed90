package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stock-sync/core/shopify"
)

// Client is a mock implementation of shopify.Client
type Client struct {
	mock.Mock
}

func (m *Client) LookupVariant(ctx context.Context, sku string) (*shopify.Variant, error) {
	args := m.Called(ctx, sku)
	if v, ok := args.Get(0).(*shopify.Variant); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) AdjustQuantity(ctx context.Context, inventoryItemID string, delta int) (*shopify.AdjustResult, error) {
	args := m.Called(ctx, inventoryItemID, delta)
	if r, ok := args.Get(0).(*shopify.AdjustResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
