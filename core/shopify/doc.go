// Package shopify talks to the Shopify Admin GraphQL API for one store.
//
// The sync pipeline needs exactly two operations per store, both exposed on
// the Client interface:
//
//   - LookupVariant: resolve a SKU to its variant and inventory item IDs.
//     A well-formed response with no match returns (nil, nil); a transport or
//     GraphQL-level failure returns an error. The two cases stay
//     distinguishable so the orchestrator can tally them separately.
//   - AdjustQuantity: apply a signed, additive delta to an inventory item.
//     Remote validation failures come back as UserErrors on the result, not
//     as an error.
//
// Authentication uses the store's access token on every request. The GraphQL
// transport is mockable through the Client interface (see shopify/mocks).
package shopify
