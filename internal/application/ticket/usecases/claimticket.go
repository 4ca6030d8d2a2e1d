package usecases

import (
	"context"
	"fmt"

	"github.com/haven-rp/warden/internal/shared/logger"
)

type ClaimTicketCommand struct {
	ChannelID  string
	ClaimantID string
}

// ClaimTicketUseCase narrows a ticket channel to one staff member. No
// claimant is persisted; re-claiming simply rewrites the overwrites.
type ClaimTicketUseCase struct {
	guild   GuildPort
	members MemberPort
	logger  logger.Interface
}

func NewClaimTicketUseCase(guild GuildPort, members MemberPort, log logger.Interface) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{guild: guild, members: members, logger: log}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) error {
	member, err := uc.members.Member(ctx, cmd.ClaimantID)
	if err != nil {
		return fmt.Errorf("failed to resolve claimant: %w", err)
	}
	if !member.IsStaff {
		return ErrNotStaff
	}

	if err := uc.guild.RestrictToClaimant(ctx, cmd.ChannelID, cmd.ClaimantID); err != nil {
		return fmt.Errorf("failed to apply claim overwrites: %w", err)
	}

	uc.logger.Infow("ticket claimed", "channel_id", cmd.ChannelID, "claimant_id", cmd.ClaimantID)
	return nil
}
