package reconcile

import (
	"context"
	"errors"
	"testing"

	"stock-sync/core/shopify"
	"stock-sync/core/shopify/mocks"
	"stock-sync/core/snapshot"
	"stock-sync/core/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockLoader is a test double for the snapshot fetch+parse step.
type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context) ([]snapshot.Row, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]snapshot.Row); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func testMapping() snapshot.Config {
	return snapshot.Config{SKUColumn: "Code & Description", QuantityColumn: "Balance"}
}

func snapshotRows() []snapshot.Row {
	return []snapshot.Row{
		{"Code & Description": "SKU1 First Widget", "Balance": "5"},
		{"Code & Description": "SKU2 Second Widget", "Balance": "7"},
	}
}

func staticClients(clients map[string]shopify.Client) ClientFactory {
	return func(store shopify.Store) (shopify.Client, error) {
		if c, ok := clients[store.Name]; ok {
			return c, nil
		}
		return nil, errors.New("unknown store")
	}
}

func TestCoordinator_ZeroStoresIsFatalBeforeFetch(t *testing.T) {
	loader := new(mockLoader)

	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  nil,
		Clients: staticClients(nil),
		Log:     zap.NewNop(),
	}

	summary, err := coord.Run(context.Background())

	assert.ErrorIs(t, err, ErrNoStores)
	assert.Nil(t, summary)
	loader.AssertNotCalled(t, "Load", mock.Anything)
}

func TestCoordinator_TransferFailureAbortsRun(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return(nil, transfer.ErrTransfer)

	factoryCalled := false
	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  []shopify.Store{{Name: "shop-a"}},
		Clients: func(store shopify.Store) (shopify.Client, error) {
			factoryCalled = true
			return nil, nil
		},
		Log: zap.NewNop(),
	}

	summary, err := coord.Run(context.Background())

	assert.ErrorIs(t, err, transfer.ErrTransfer)
	assert.Nil(t, summary)
	assert.False(t, factoryCalled, "no store may be contacted when the snapshot fetch fails")
}

func TestCoordinator_EmptySnapshotIsNothingToDo(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return([]snapshot.Row{}, nil)

	factoryCalled := false
	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  []shopify.Store{{Name: "shop-a"}},
		Clients: func(store shopify.Store) (shopify.Client, error) {
			factoryCalled = true
			return nil, nil
		},
		Log: zap.NewNop(),
	}

	summary, err := coord.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalUpdated)
	assert.Equal(t, 0, summary.TotalSkipped)
	assert.False(t, factoryCalled)
}

func TestCoordinator_AggregatesAcrossStores(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return(snapshotRows(), nil).Once()

	// Store A matches both SKUs; store B fails transport on every lookup.
	clientA := new(mocks.Client)
	clientA.On("LookupVariant", mock.Anything, "SKU1").Return(variantFor("SKU1"), nil)
	clientA.On("LookupVariant", mock.Anything, "SKU2").Return(variantFor("SKU2"), nil)
	clientA.On("AdjustQuantity", mock.Anything, "gid://shopify/InventoryItem/SKU1", 5).
		Return(&shopify.AdjustResult{}, nil)
	clientA.On("AdjustQuantity", mock.Anything, "gid://shopify/InventoryItem/SKU2", 7).
		Return(&shopify.AdjustResult{}, nil)

	clientB := new(mocks.Client)
	clientB.On("LookupVariant", mock.Anything, mock.Anything).Return(nil, errors.New("store down"))

	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  []shopify.Store{{Name: "shop-a"}, {Name: "shop-b"}},
		Clients: staticClients(map[string]shopify.Client{"shop-a": clientA, "shop-b": clientB}),
		Log:     zap.NewNop(),
	}

	summary, err := coord.Run(context.Background())
	require.NoError(t, err)

	// Target isolation: shop-b's outage leaves shop-a's tally intact.
	require.Len(t, summary.Stores, 2)
	assert.Equal(t, StoreTally{Store: "shop-a", Updated: 2, Skipped: 0}, summary.Stores[0])
	assert.Equal(t, StoreTally{Store: "shop-b", Updated: 0, Skipped: 2}, summary.Stores[1])

	assert.Equal(t, summary.Stores[0].Updated+summary.Stores[1].Updated, summary.TotalUpdated)
	assert.Equal(t, summary.Stores[0].Skipped+summary.Stores[1].Skipped, summary.TotalSkipped)

	// The snapshot is fetched exactly once for the whole run.
	loader.AssertNumberOfCalls(t, "Load", 1)
}

func TestCoordinator_FactoryErrorDegradesSingleStore(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return(snapshotRows(), nil)

	clientA := new(mocks.Client)
	clientA.On("LookupVariant", mock.Anything, mock.Anything).Return(variantFor("X"), nil)
	clientA.On("AdjustQuantity", mock.Anything, mock.Anything, mock.Anything).
		Return(&shopify.AdjustResult{}, nil)

	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  []shopify.Store{{Name: "shop-a"}, {Name: "shop-broken"}},
		Clients: staticClients(map[string]shopify.Client{"shop-a": clientA}),
		Log:     zap.NewNop(),
	}

	summary, err := coord.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StoreTally{Store: "shop-a", Updated: 2, Skipped: 0}, summary.Stores[0])
	assert.Equal(t, StoreTally{Store: "shop-broken", Updated: 0, Skipped: 2}, summary.Stores[1])
	assert.Equal(t, 2, summary.TotalUpdated)
	assert.Equal(t, 2, summary.TotalSkipped)
}

func TestCoordinator_ConcurrentStoresProduceSameAggregate(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return(snapshotRows(), nil)

	okClient := func() *mocks.Client {
		c := new(mocks.Client)
		c.On("LookupVariant", mock.Anything, mock.Anything).Return(variantFor("X"), nil)
		c.On("AdjustQuantity", mock.Anything, mock.Anything, mock.Anything).
			Return(&shopify.AdjustResult{}, nil)
		return c
	}

	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores: []shopify.Store{
			{Name: "shop-1"}, {Name: "shop-2"}, {Name: "shop-3"}, {Name: "shop-4"},
		},
		Clients: staticClients(map[string]shopify.Client{
			"shop-1": okClient(), "shop-2": okClient(), "shop-3": okClient(), "shop-4": okClient(),
		}),
		Log:  zap.NewNop(),
		Opts: Options{StoreConcurrency: 4, Workers: 2},
	}

	summary, err := coord.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, summary.TotalUpdated)
	assert.Equal(t, 0, summary.TotalSkipped)
	for i, tally := range summary.Stores {
		assert.Equal(t, coord.Stores[i].Name, tally.Store, "reporting preserves configuration order")
	}
}

func TestCoordinator_CancellationEmitsPartialSummary(t *testing.T) {
	loader := new(mockLoader)
	loader.On("Load", mock.Anything).Return(snapshotRows(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coord := &Coordinator{
		Loader:  loader,
		Mapping: testMapping(),
		Stores:  []shopify.Store{{Name: "shop-a"}},
		Clients: staticClients(nil),
		Log:     zap.NewNop(),
	}

	summary, err := coord.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, summary)
	require.Len(t, summary.Stores, 1)
	assert.Equal(t, StoreTally{Store: "shop-a"}, summary.Stores[0])
}
