package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/haven-rp/warden/internal/shared/logger"
)

// MaxChannelNameLength is the platform limit on channel display names.
const MaxChannelNameLength = 100

type RenameTicketCommand struct {
	ChannelID string
	StaffID   string
	Name      string
}

// RenameTicketUseCase sets the ticket channel's display name. No uniqueness
// check is performed.
type RenameTicketUseCase struct {
	guild   GuildPort
	members MemberPort
	logger  logger.Interface
}

func NewRenameTicketUseCase(guild GuildPort, members MemberPort, log logger.Interface) *RenameTicketUseCase {
	return &RenameTicketUseCase{guild: guild, members: members, logger: log}
}

func (uc *RenameTicketUseCase) Execute(ctx context.Context, cmd RenameTicketCommand) error {
	staff, err := uc.members.Member(ctx, cmd.StaffID)
	if err != nil {
		return fmt.Errorf("failed to resolve staff member: %w", err)
	}
	if !staff.IsStaff {
		return ErrNotStaff
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("channel name is empty")
	}
	if len(name) > MaxChannelNameLength {
		return ErrNameTooLong
	}

	if err := uc.guild.RenameChannel(ctx, cmd.ChannelID, name); err != nil {
		return fmt.Errorf("failed to rename channel: %w", err)
	}

	uc.logger.Infow("ticket renamed", "channel_id", cmd.ChannelID, "name", name)
	return nil
}
