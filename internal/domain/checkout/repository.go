package checkout

import "context"

// Repository is the storage contract for leave-of-absence rows.
type Repository interface {
	Save(ctx context.Context, c *Checkout) error
	FindAll(ctx context.Context) ([]*Checkout, error)
	// Delete removes the row. Deleting a missing row is a no-op, not an error.
	Delete(ctx context.Context, userID string) error
}
