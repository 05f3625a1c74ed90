package reconcile

// Outcome classifies the result of syncing a single record to one store.
type Outcome string

const (
	// OutcomeUpdated means the adjustment was applied.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkippedNotFound means the SKU is not provisioned on the store.
	OutcomeSkippedNotFound Outcome = "skipped_not_found"
	// OutcomeSkippedRemoteError means the store rejected the adjustment.
	OutcomeSkippedRemoteError Outcome = "skipped_remote_error"
	// OutcomeSkippedTransportError means the request itself failed.
	OutcomeSkippedTransportError Outcome = "skipped_transport_error"
)

// Updated reports whether the outcome counts toward the updated tally.
// Every other outcome counts as skipped.
func (o Outcome) Updated() bool {
	return o == OutcomeUpdated
}

// StoreTally holds the per-store counts, finalized once all records for the
// store have been processed.
type StoreTally struct {
	// Store is the store name, used for reporting.
	Store string `json:"store"`
	// Updated counts records whose adjustment was applied.
	Updated int `json:"updated"`
	// Skipped counts records that could not be applied, for any reason.
	Skipped int `json:"skipped"`
}

// RunSummary aggregates tallies across all stores of a run.
type RunSummary struct {
	// TotalUpdated is the sum of Updated over all store tallies.
	TotalUpdated int `json:"total_updated"`
	// TotalSkipped is the sum of Skipped over all store tallies.
	TotalSkipped int `json:"total_skipped"`
	// Stores lists the per-store tallies in configuration order.
	Stores []StoreTally `json:"stores"`
}

// Config holds concurrency tunables for a sync run.
type Config struct {
	// StoreConcurrency bounds how many stores are synced in parallel.
	StoreConcurrency int `mapstructure:"store_concurrency" default:"1"`
	// Workers bounds how many records are processed in parallel per store.
	Workers int `mapstructure:"workers" default:"1"`
}

// Options controls the behavior of one run.
type Options struct {
	// DryRun resolves records and logs the would-be adjustment without
	// mutating any store. Resolved records count as updated.
	DryRun bool

	// StoreConcurrency bounds parallel store syncs. Values below 1 mean
	// sequential.
	StoreConcurrency int

	// Workers bounds parallel record processing within a store. Values
	// below 1 mean sequential.
	Workers int
}
