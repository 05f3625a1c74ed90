package transfer

import "context"

// Source retrieves the complete raw snapshot content from its origin.
type Source interface {
	// Fetch returns the full snapshot bytes, or an error wrapping ErrTransfer.
	// It never returns a partial payload.
	Fetch(ctx context.Context) ([]byte, error)
}
