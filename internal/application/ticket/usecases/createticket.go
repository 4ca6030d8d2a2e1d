package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID   string
	Username string
	Category string
	GuildID  string
}

type CreateTicketResult struct {
	UUID      string
	ShortID   string
	ChannelID string
	Category  ticket.Category
}

// CreateTicketUseCase opens a private support channel for a member and
// persists the routing row. The storage layer's unique index decides races:
// the loser deletes its freshly created channel instead of leaving an orphan.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	guild      GuildPort
	members    MemberPort
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	guild GuildPort,
	members MemberPort,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		guild:      guild,
		members:    members,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	category := ticket.Category(cmd.Category)
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	member, err := uc.members.Member(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member: %w", err)
	}
	if member.IsStaff {
		return nil, ErrStaffMember
	}

	// Fast path for the common duplicate; the unique index below is the
	// authoritative guard.
	if _, err := uc.ticketRepo.FindByUserID(ctx, cmd.UserID); err == nil {
		return nil, ticket.ErrAlreadyOpen
	} else if !errors.Is(err, ticket.ErrNotFound) {
		return nil, err
	}

	categoryID, err := uc.guild.EnsureCategory(ctx, category.String())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure category channel: %w", err)
	}

	name := fmt.Sprintf("ticket-%s", strings.ToLower(cmd.Username))
	topic := fmt.Sprintf("Ticket by %s | Category: %s", cmd.Username, category)
	channelID, err := uc.guild.CreateTicketChannel(ctx, categoryID, name, topic, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket channel: %w", err)
	}

	newTicket, err := ticket.NewTicket(cmd.UserID, category, channelID, cmd.GuildID)
	if err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		if errors.Is(err, ticket.ErrAlreadyOpen) {
			// Lost a concurrent race; the other creation owns the row.
			if delErr := uc.guild.DeleteChannel(ctx, channelID); delErr != nil {
				uc.logger.Warnw("failed to remove channel after losing create race",
					"channel_id", channelID, "error", delErr)
			}
			return nil, ticket.ErrAlreadyOpen
		}
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"uuid", newTicket.UUID(),
		"user_id", cmd.UserID,
		"category", category,
		"channel_id", channelID,
	)

	return &CreateTicketResult{
		UUID:      newTicket.UUID(),
		ShortID:   newTicket.ShortID(),
		ChannelID: channelID,
		Category:  category,
	}, nil
}
