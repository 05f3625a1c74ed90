package reconcile

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stock-sync/core/shopify"
	"stock-sync/core/snapshot"
)

// ErrNoStores is returned when a run is started without any configured
// store. It is a configuration error raised before any network activity.
var ErrNoStores = errors.New("no stores configured")

// SnapshotLoader abstracts the snapshot fetch+parse step for the coordinator.
type SnapshotLoader interface {
	Load(ctx context.Context) ([]snapshot.Row, error)
}

// ClientFactory builds the API client for one store. A factory error
// degrades that store to a fully-skipped tally instead of failing the run.
type ClientFactory func(store shopify.Store) (shopify.Client, error)

// Coordinator drives a full reconciliation run: one snapshot load fanned out
// to every configured store.
type Coordinator struct {
	Loader  SnapshotLoader
	Mapping snapshot.Config
	Stores  []shopify.Store
	Clients ClientFactory
	Log     *zap.Logger
	Opts    Options
}

// Run executes the pipeline and returns the aggregate summary.
//
// Fatal conditions are zero configured stores (before any fetch) and a
// snapshot transfer failure. An empty normalized record set is "nothing to
// do": the zero summary is returned without contacting any store. On
// cancellation the summary reflects the stores completed so far and the
// context error is returned alongside it.
func (c *Coordinator) Run(ctx context.Context) (*RunSummary, error) {
	if len(c.Stores) == 0 {
		return nil, ErrNoStores
	}

	c.Log.Info("Downloading inventory snapshot")
	rows, err := c.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := snapshot.Normalize(rows, c.Mapping, c.Log)
	if len(records) == 0 {
		c.Log.Warn("No valid inventory records in snapshot, nothing to do")
		return &RunSummary{Stores: []StoreTally{}}, nil
	}
	c.Log.Info("Snapshot normalized",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(records)),
	)

	limit := c.Opts.StoreConcurrency
	if limit < 1 {
		limit = 1
	}

	// Tallies are written at fixed indices so configuration order is
	// preserved in the report regardless of completion order.
	tallies := make([]StoreTally, len(c.Stores))

	var g errgroup.Group
	g.SetLimit(limit)

	for i, store := range c.Stores {
		if ctx.Err() != nil {
			tallies[i] = StoreTally{Store: store.Name}
			continue
		}

		i, store := i, store
		g.Go(func() error {
			tallies[i] = c.syncOne(ctx, store, records)
			return nil
		})
	}

	_ = g.Wait()

	summary := &RunSummary{Stores: tallies}
	for _, tally := range tallies {
		summary.TotalUpdated += tally.Updated
		summary.TotalSkipped += tally.Skipped
	}

	c.Log.Info("Run summary",
		zap.Int("total_updated", summary.TotalUpdated),
		zap.Int("total_skipped", summary.TotalSkipped),
		zap.Int("stores", len(tallies)),
	)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// syncOne builds the store's client and runs the orchestrator. The records
// slice is shared read-only across all stores.
func (c *Coordinator) syncOne(ctx context.Context, store shopify.Store, records []snapshot.StockRecord) StoreTally {
	client, err := c.Clients(store)
	if err != nil {
		// Degrade this store only; other stores must still sync.
		c.Log.Error("Store client setup failed, skipping store",
			zap.String("store", store.Name),
			zap.Error(err),
		)
		return StoreTally{Store: store.Name, Skipped: len(records)}
	}

	return SyncStore(ctx, c.Log, client, store, records, c.Opts)
}
