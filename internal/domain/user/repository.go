package user

import "context"

// Repository is the storage contract for verified member rows.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Exists(ctx context.Context, discordID string) (bool, error)
	// Delete removes the row. Deleting a missing row is a no-op, not an error.
	Delete(ctx context.Context, discordID string) error
}
