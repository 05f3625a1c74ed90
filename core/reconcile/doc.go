// Package reconcile drives the multi-store inventory reconciliation run.
//
// A run has a strict shape: the snapshot is fetched and normalized exactly
// once, then the resulting record sequence is fanned out to every configured
// store. Each store sync is fully independent: records are resolved to
// store-scoped identifiers and adjusted one by one, a failing item never
// aborts the remaining items, and a failing store never aborts the remaining
// stores.
//
// # Components
//
// 1. SyncStore: the per-store orchestrator. For each record it resolves the
// SKU through the store's client, applies the quantity delta, and classifies
// the outcome into a StoreTally. Record processing may use a bounded worker
// pool; tally counters are atomic.
//
// 2. Coordinator: the run-level driver. It validates configuration, loads the
// snapshot once, and runs SyncStore per store, optionally concurrently with a
// bounded limit, aggregating tallies into a RunSummary.
//
// # Outcome taxonomy
//
// Every record processed for a store lands in exactly one outcome: Updated,
// SkippedNotFound (SKU not provisioned on that store), SkippedRemoteError
// (store rejected the adjustment), or SkippedTransportError (the request
// itself failed). Only configuration and snapshot errors can fail a run.
//
// # Usage Example
//
//	coord := &reconcile.Coordinator{
//	    Loader:  snapshot.NewLoader(src, log),
//	    Mapping: cfg.Snapshot,
//	    Stores:  stores,
//	    Clients: func(s shopify.Store) (shopify.Client, error) {
//	        return shopify.NewGraphQLClient(s), nil
//	    },
//	    Log:  log,
//	    Opts: opts,
//	}
//	summary, err := coord.Run(ctx)
package reconcile
