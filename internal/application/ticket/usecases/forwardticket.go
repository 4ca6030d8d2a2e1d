package usecases

import (
	"context"
	"fmt"
	"strconv"

	"github.com/haven-rp/warden/internal/shared/logger"
)

type ForwardTicketCommand struct {
	ChannelID string
	StaffID   string
	// TargetID is the raw user-id string typed into the form.
	TargetID string
}

type ForwardTicketResult struct {
	TargetID       string
	TargetUsername string
}

// ForwardTicketUseCase grants another member visibility into a ticket
// channel. Ticket ownership in the database is unchanged. Validation
// short-circuits in a fixed order: non-numeric id, unknown member, bot,
// offline, already staff.
type ForwardTicketUseCase struct {
	guild   GuildPort
	members MemberPort
	logger  logger.Interface
}

func NewForwardTicketUseCase(guild GuildPort, members MemberPort, log logger.Interface) *ForwardTicketUseCase {
	return &ForwardTicketUseCase{guild: guild, members: members, logger: log}
}

func (uc *ForwardTicketUseCase) Execute(ctx context.Context, cmd ForwardTicketCommand) (*ForwardTicketResult, error) {
	staff, err := uc.members.Member(ctx, cmd.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve staff member: %w", err)
	}
	if !staff.IsStaff {
		return nil, ErrNotStaff
	}

	if _, err := strconv.ParseUint(cmd.TargetID, 10, 64); err != nil {
		return nil, ErrInvalidUserID
	}

	target, err := uc.members.Member(ctx, cmd.TargetID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	if target.IsBot {
		return nil, ErrBotAccount
	}
	if !target.Online {
		return nil, ErrMemberOffline
	}
	if target.IsStaff {
		return nil, ErrAlreadyStaff
	}

	if err := uc.guild.GrantMemberAccess(ctx, cmd.ChannelID, cmd.TargetID); err != nil {
		return nil, fmt.Errorf("failed to grant channel access: %w", err)
	}

	uc.logger.Infow("ticket forwarded",
		"channel_id", cmd.ChannelID,
		"staff_id", cmd.StaffID,
		"target_id", cmd.TargetID,
	)

	return &ForwardTicketResult{
		TargetID:       target.ID,
		TargetUsername: target.Username,
	}, nil
}
