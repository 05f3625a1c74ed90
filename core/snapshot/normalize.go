package snapshot

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Normalize converts raw rows into stock records using the configured column
// mapping. Relative row order is preserved and duplicate SKUs are kept as
// independent records; each one is applied as its own delta downstream.
func Normalize(rows []Row, cfg Config, log *zap.Logger) []StockRecord {
	records := make([]StockRecord, 0, len(rows))

	for _, row := range rows {
		sku, ok := extractSKU(row[cfg.SKUColumn])
		if !ok {
			// Non-product row (subtotal, section header, empty line).
			continue
		}

		records = append(records, StockRecord{
			SKU:           sku,
			QuantityDelta: parseQuantity(row[cfg.QuantityColumn], sku, log),
		})
	}

	return records
}

// extractSKU takes the leading whitespace-delimited token of the composite
// cell. An empty token or the spreadsheet's "nan" placeholder means the row
// carries no SKU.
func extractSKU(cell string) (string, bool) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return "", false
	}
	sku := fields[0]
	if strings.EqualFold(sku, "nan") {
		return "", false
	}
	return sku, true
}

// parseQuantity reads the balance cell. Missing, empty, or unparsable values
// normalize to 0; the row is still synced.
func parseQuantity(cell, sku string, log *zap.Logger) int {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0
	}

	// The export writes balances as plain integers, but Excel occasionally
	// renders them with a decimal part.
	qty, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		log.Debug("Unparsable balance cell, normalizing to 0",
			zap.String("sku", sku),
			zap.String("cell", trimmed),
		)
		return 0
	}
	return int(qty)
}
