package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"stock-sync/core/config"
	"stock-sync/core/logger"
	"stock-sync/core/reconcile"
	"stock-sync/core/shopify"
	"stock-sync/core/snapshot"
	"stock-sync/core/storage"
	"stock-sync/core/transfer"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	dryRunSync   bool
	storesFilter []string
)

// syncCmd runs one full reconciliation: snapshot fetch, normalization, and
// fan-out to every configured store.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the inventory snapshot against all configured stores",
	Long: `Fetch the inventory snapshot from the configured origin, normalize it into
stock records, and apply the quantity deltas to every configured Shopify store.

Per-item failures (unknown SKU, rejected adjustment, transport error) are
tallied and logged; only configuration or snapshot-fetch failures abort the
run.

Examples:
  # Reconcile all configured stores
  stock-sync sync

  # Resolve and report without mutating any store
  stock-sync sync --dry-run

  # Reconcile a subset of stores
  stock-sync sync --stores alpha,beta`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Resolve and report without applying adjustments")
	syncCmd.Flags().StringSliceVar(&storesFilter, "stores", nil, "Restrict the run to these store names (comma-separated)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	// Cancellation is checked between records and stores; a partial summary
	// is still reported on interrupt.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithRun(l, uuid.NewString())

	stores, err := selectStores(cfg.Stores, storesFilter)
	if err != nil {
		return err
	}
	l.Info("Starting inventory sync",
		zap.Int("stores", len(stores)),
		zap.Bool("dry_run", dryRunSync),
	)

	src, err := buildSource(cfg, l)
	if err != nil {
		return err
	}

	coord := &reconcile.Coordinator{
		Loader:  snapshot.NewLoader(src, l),
		Mapping: cfg.Snapshot,
		Stores:  stores,
		Clients: func(s shopify.Store) (shopify.Client, error) {
			if s.AccessToken == "" {
				return nil, fmt.Errorf("store %s has no access token", s.Name)
			}
			return shopify.NewGraphQLClient(s), nil
		},
		Log: l,
		Opts: reconcile.Options{
			DryRun:           dryRunSync,
			StoreConcurrency: cfg.Sync.StoreConcurrency,
			Workers:          cfg.Sync.Workers,
		},
	}

	summary, err := coord.Run(ctx)
	if summary != nil {
		printRunReport(l, summary)
	}
	if err != nil {
		return fmt.Errorf("sync run failed: %w", err)
	}

	l.Info("Inventory sync complete")
	return nil
}

// buildSource constructs the snapshot source for the configured origin.
func buildSource(cfg *config.Config, l *zap.Logger) (transfer.Source, error) {
	switch cfg.Transfer.Origin {
	case transfer.OriginFTP:
		return transfer.NewFTPSource(cfg.Transfer, l), nil
	case transfer.OriginObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return transfer.NewObjectSource(client, cfg.Storage.Bucket, cfg.Transfer.FilePath), nil
	default:
		return nil, fmt.Errorf("unrecognized transfer origin %q", cfg.Transfer.Origin)
	}
}

// selectStores applies the --stores filter, preserving configuration order.
func selectStores(configured []shopify.Store, filter []string) ([]shopify.Store, error) {
	if len(filter) == 0 {
		return configured, nil
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[strings.TrimSpace(name)] = true
	}

	var selected []shopify.Store
	for _, store := range configured {
		if wanted[store.Name] {
			selected = append(selected, store)
			delete(wanted, store.Name)
		}
	}

	if len(wanted) > 0 {
		var unknown []string
		for name := range wanted {
			unknown = append(unknown, name)
		}
		return nil, fmt.Errorf("unknown store(s) in --stores: %s", strings.Join(unknown, ", "))
	}

	return selected, nil
}

// printRunReport logs the per-store tallies and the aggregate totals.
func printRunReport(l *zap.Logger, summary *reconcile.RunSummary) {
	for _, tally := range summary.Stores {
		l.Info("Store tally",
			zap.String("store", tally.Store),
			zap.Int("updated", tally.Updated),
			zap.Int("skipped", tally.Skipped),
		)
	}

	l.Info("Aggregate summary",
		zap.Int("total_updated", summary.TotalUpdated),
		zap.Int("total_skipped", summary.TotalSkipped),
	)
}
