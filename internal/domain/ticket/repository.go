package ticket

import (
	"context"
	"errors"
)

// ErrAlreadyOpen is returned by Save when the user already has an open
// ticket. The storage layer enforces this with a unique index on user_id, so
// two racing creations cannot both insert.
var ErrAlreadyOpen = errors.New("user already has an open ticket")

// ErrNotFound is returned when no ticket matches the lookup key.
var ErrNotFound = errors.New("ticket not found")

// Repository is the storage contract for ticket rows.
type Repository interface {
	// Save inserts the ticket. Returns ErrAlreadyOpen when a row for the
	// same user already exists.
	Save(ctx context.Context, t *Ticket) error
	FindByUUID(ctx context.Context, uuid string) (*Ticket, error)
	FindByUserID(ctx context.Context, userID string) (*Ticket, error)
	FindByChannelID(ctx context.Context, channelID string) (*Ticket, error)
	// Delete removes the row by uuid. Deleting a missing row is not an error.
	Delete(ctx context.Context, uuid string) error
}
