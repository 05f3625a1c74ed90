package shopify

import "fmt"

// DefaultAPIVersion is used when a store's configuration does not pin one.
const DefaultAPIVersion = "2025-07"

// Store identifies one Shopify store to reconcile against. Values are loaded
// once at startup and immutable for the run's duration.
type Store struct {
	// Name is the myshopify subdomain, also used in logging and reporting.
	Name string
	// AccessToken is the Admin API token attached to every request.
	AccessToken string
	// APIVersion is the Admin API version segment of the endpoint URL.
	APIVersion string
}

// Endpoint returns the store's Admin GraphQL endpoint.
func (s Store) Endpoint() string {
	return fmt.Sprintf("https://%s.myshopify.com/admin/api/%s/graphql.json", s.Name, s.APIVersion)
}
