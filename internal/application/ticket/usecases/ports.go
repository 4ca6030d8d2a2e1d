package usecases

import (
	"context"
	"time"
)

// GuildPort is the channel surface the ticket workflow mutates. The adapter
// knows the guild, the staff role, and the default role; use cases speak in
// ticket semantics only.
type GuildPort interface {
	// EnsureCategory finds or creates the category channel with the given name.
	EnsureCategory(ctx context.Context, name string) (string, error)
	// CreateTicketChannel creates a text channel under the category whose
	// overwrites grant exactly the owner and the staff role and deny the
	// default role.
	CreateTicketChannel(ctx context.Context, categoryID, name, topic, ownerID string) (string, error)
	DeleteChannel(ctx context.Context, channelID string) error
	RenameChannel(ctx context.Context, channelID, name string) error
	// GrantMemberAccess adds view/send overwrites for one member.
	GrantMemberAccess(ctx context.Context, channelID, userID string) error
	// RestrictToClaimant grants the claimant access and revokes the
	// staff-role-wide overwrite; the ticket owner's overwrite is untouched.
	RestrictToClaimant(ctx context.Context, channelID, claimantID string) error
	// DeleteCategoryIfEmpty removes the category when no channels remain in it.
	DeleteCategoryIfEmpty(ctx context.Context, categoryID string) error
	// CategoryOf returns the parent category of a channel, empty when none.
	CategoryOf(ctx context.Context, channelID string) (string, error)
}

// Member is the guild-member snapshot the workflows validate against.
type Member struct {
	ID        string
	Username  string
	IsBot     bool
	Online    bool
	IsStaff   bool
	CreatedAt time.Time
}

// MemberPort resolves guild members. Lookup failures mean the id does not
// belong to a member of the guild.
type MemberPort interface {
	Member(ctx context.Context, userID string) (*Member, error)
}
