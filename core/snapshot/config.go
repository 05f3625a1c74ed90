package snapshot

// Config holds the column mapping for the inventory workbook.
type Config struct {
	// SKUColumn is the header of the composite column whose first
	// whitespace-delimited token is the SKU.
	SKUColumn string `mapstructure:"sku_column" default:"Code & Description"`
	// QuantityColumn is the header of the numeric column holding the
	// quantity delta.
	QuantityColumn string `mapstructure:"quantity_column" default:"Balance"`
}
