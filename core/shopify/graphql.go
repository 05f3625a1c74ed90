package shopify

import (
	"context"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
)

const lookupVariantQuery = `
query getVariant($sku: String!) {
    productVariants(first: 1, query: $sku) {
        edges {
            node {
                id
                inventoryItem {
                    id
                }
            }
        }
    }
}`

const adjustQuantityMutation = `
mutation adjustInventory($input: InventoryAdjustQuantityInput!) {
    inventoryAdjustQuantity(input: $input) {
        inventoryLevel {
            quantities(names: ["available"]) {
                quantity
            }
        }
        userErrors {
            field
            message
        }
    }
}`

// GraphQLClient implements Client against the Shopify Admin GraphQL API.
type GraphQLClient struct {
	store  Store
	client *graphql.Client
}

// Option customizes a GraphQLClient.
type Option func(*options)

type options struct {
	endpoint   string
	httpClient *http.Client
}

// WithEndpoint overrides the derived store endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewGraphQLClient creates an authenticated client for one store.
func NewGraphQLClient(store Store, opts ...Option) *GraphQLClient {
	o := options{
		endpoint:   store.Endpoint(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &GraphQLClient{
		store:  store,
		client: graphql.NewClient(o.endpoint, graphql.WithHTTPClient(o.httpClient)),
	}
}

// LookupVariant issues a point query constrained to at most one match.
func (c *GraphQLClient) LookupVariant(ctx context.Context, sku string) (*Variant, error) {
	req := graphql.NewRequest(lookupVariantQuery)
	req.Var("sku", sku)
	c.authorize(req)

	var resp struct {
		ProductVariants struct {
			Edges []struct {
				Node struct {
					ID            string `json:"id"`
					InventoryItem struct {
						ID string `json:"id"`
					} `json:"inventoryItem"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"productVariants"`
	}
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	if len(resp.ProductVariants.Edges) == 0 {
		return nil, nil
	}

	node := resp.ProductVariants.Edges[0].Node
	if node.ID == "" || node.InventoryItem.ID == "" {
		// Response shape without the identifier fields counts as no match.
		return nil, nil
	}

	return &Variant{
		VariantID:       node.ID,
		InventoryItemID: node.InventoryItem.ID,
	}, nil
}

// AdjustQuantity applies an additive delta to the inventory item.
func (c *GraphQLClient) AdjustQuantity(ctx context.Context, inventoryItemID string, delta int) (*AdjustResult, error) {
	req := graphql.NewRequest(adjustQuantityMutation)
	req.Var("input", map[string]any{
		"inventoryItemId": inventoryItemID,
		"availableDelta":  delta,
	})
	c.authorize(req)

	var resp struct {
		InventoryAdjustQuantity struct {
			InventoryLevel struct {
				Quantities []struct {
					Quantity int `json:"quantity"`
				} `json:"quantities"`
			} `json:"inventoryLevel"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"inventoryAdjustQuantity"`
	}
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, err
	}

	result := &AdjustResult{
		UserErrors: resp.InventoryAdjustQuantity.UserErrors,
	}
	if qs := resp.InventoryAdjustQuantity.InventoryLevel.Quantities; len(qs) > 0 {
		result.Available = qs[0].Quantity
	}
	return result, nil
}

func (c *GraphQLClient) authorize(req *graphql.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.store.AccessToken)
}
