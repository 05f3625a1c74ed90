package snapshot

// Row is one raw workbook row, keyed by header cell text.
// Empty cells are absent from the map.
type Row map[string]string

// StockRecord is the canonical form of one snapshot line: a SKU and the
// signed quantity delta to apply to each store. Records are immutable and
// shared read-only across all store syncs of a run.
type StockRecord struct {
	SKU           string
	QuantityDelta int
}
