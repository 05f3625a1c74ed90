package shopify

import "context"

// Variant holds the store-scoped identifiers needed to adjust inventory for
// a SKU. Identifiers are ephemeral: they are resolved per run and never
// shared across stores.
type Variant struct {
	// VariantID is the product variant GID.
	VariantID string
	// InventoryItemID is the inventory item GID the adjustment targets.
	InventoryItemID string
}

// UserError is a remote validation error reported inside a successful
// GraphQL response (e.g. invalid identifier, quantity not adjustable).
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// AdjustResult is the outcome of an inventory adjustment request that made
// it to the store. A non-empty UserErrors list means the store rejected the
// adjustment.
type AdjustResult struct {
	// Available is the available quantity after the adjustment, when the
	// store reports it.
	Available int
	// UserErrors lists remote validation failures. Empty on success.
	UserErrors []UserError
}

// Client exposes the two Admin API operations the sync pipeline uses.
type Client interface {
	// LookupVariant resolves a SKU to its identifiers. It returns
	// (nil, nil) when the store has no matching variant and a non-nil
	// error only for transport or GraphQL-level failures.
	LookupVariant(ctx context.Context, sku string) (*Variant, error)

	// AdjustQuantity applies an additive delta to the inventory item.
	// Remote validation failures are reported via AdjustResult.UserErrors;
	// a non-nil error means the request itself failed.
	AdjustQuantity(ctx context.Context, inventoryItemID string, delta int) (*AdjustResult, error)
}
