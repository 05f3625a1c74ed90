package reconcile

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stock-sync/core/shopify"
	"stock-sync/core/snapshot"
)

// SyncStore reconciles all records against one store and returns its tally.
//
// Records are processed independently: a per-item failure is tallied and
// logged but never aborts the remaining items. Cancellation is honored
// between records, not mid-request, so the returned tally reflects the
// records actually processed.
func SyncStore(ctx context.Context, log *zap.Logger, client shopify.Client, store shopify.Store, records []snapshot.StockRecord, opts Options) StoreTally {
	log = log.With(zap.String("store", store.Name))
	log.Info("Processing records for store", zap.Int("records", len(records)))

	var updated, skipped atomic.Int64

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for _, rec := range records {
		if ctx.Err() != nil {
			break
		}

		rec := rec
		g.Go(func() error {
			outcome := syncRecord(ctx, log, client, rec, opts.DryRun)
			if outcome.Updated() {
				updated.Add(1)
			} else {
				skipped.Add(1)
			}
			return nil
		})
	}

	_ = g.Wait()

	tally := StoreTally{
		Store:   store.Name,
		Updated: int(updated.Load()),
		Skipped: int(skipped.Load()),
	}

	log.Info("Store sync finished",
		zap.Int("updated", tally.Updated),
		zap.Int("skipped", tally.Skipped),
	)
	return tally
}

// syncRecord resolves one record and applies its delta, classifying the
// result. Exactly one adjustment attempt is made per record per run.
func syncRecord(ctx context.Context, log *zap.Logger, client shopify.Client, rec snapshot.StockRecord, dryRun bool) Outcome {
	variant, err := client.LookupVariant(ctx, rec.SKU)
	if err != nil {
		log.Warn("Variant lookup failed",
			zap.String("sku", rec.SKU),
			zap.Error(err),
		)
		return OutcomeSkippedTransportError
	}
	if variant == nil {
		// Expected: not every SKU is provisioned on every store.
		log.Debug("SKU not provisioned on store", zap.String("sku", rec.SKU))
		return OutcomeSkippedNotFound
	}

	if dryRun {
		log.Info("Dry-run: would adjust inventory",
			zap.String("sku", rec.SKU),
			zap.String("inventory_item_id", variant.InventoryItemID),
			zap.Int("delta", rec.QuantityDelta),
		)
		return OutcomeUpdated
	}

	result, err := client.AdjustQuantity(ctx, variant.InventoryItemID, rec.QuantityDelta)
	if err != nil {
		log.Error("Inventory adjustment failed",
			zap.String("sku", rec.SKU),
			zap.Error(err),
		)
		return OutcomeSkippedTransportError
	}
	if len(result.UserErrors) > 0 {
		log.Warn("Store rejected inventory adjustment",
			zap.String("sku", rec.SKU),
			zap.Any("user_errors", result.UserErrors),
		)
		return OutcomeSkippedRemoteError
	}

	log.Debug("Inventory adjusted",
		zap.String("sku", rec.SKU),
		zap.Int("delta", rec.QuantityDelta),
		zap.Int("available", result.Available),
	)
	return OutcomeUpdated
}
