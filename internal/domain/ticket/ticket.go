// Package ticket contains the support ticket entity and its storage contract.
package ticket

import (
	"fmt"

	"github.com/haven-rp/warden/internal/shared/id"
)

// Ticket is a per-user private support channel plus its persisted routing
// metadata. The uuid is the external reference used in transcripts and
// forwarding; the claimant is never persisted and lives only in the channel
// permission overwrites.
type Ticket struct {
	uuid      string
	userID    string
	category  Category
	channelID string
	guildID   string
}

// NewTicket creates a ticket record with a fresh random identifier for a
// channel that has just been created.
func NewTicket(userID string, category Category, channelID, guildID string) (*Ticket, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel id is required")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild id is required")
	}

	return &Ticket{
		uuid:      id.NewTicketID(),
		userID:    userID,
		category:  category,
		channelID: channelID,
		guildID:   guildID,
	}, nil
}

// Reconstruct rebuilds a ticket from its stored row.
func Reconstruct(uuid, userID string, category Category, channelID, guildID string) (*Ticket, error) {
	if uuid == "" {
		return nil, fmt.Errorf("uuid is required")
	}
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}

	return &Ticket{
		uuid:      uuid,
		userID:    userID,
		category:  category,
		channelID: channelID,
		guildID:   guildID,
	}, nil
}

func (t *Ticket) UUID() string       { return t.uuid }
func (t *Ticket) UserID() string     { return t.userID }
func (t *Ticket) Category() Category { return t.category }
func (t *Ticket) ChannelID() string  { return t.channelID }
func (t *Ticket) GuildID() string    { return t.guildID }

// ShortID returns the uuid prefix used in filenames and user-facing labels.
func (t *Ticket) ShortID() string {
	return id.ShortPrefix(t.uuid)
}
