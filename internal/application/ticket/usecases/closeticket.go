package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/shared/logger"
)

type CloseTicketCommand struct {
	ChannelID string
}

// CloseTicketUseCase deletes the ticket channel and removes the row by uuid.
// The yes/no confirmation happens in the interaction layer; by the time this
// runs the close is decided.
type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	guild      GuildPort
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, guild GuildPort, log logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{ticketRepo: ticketRepo, guild: guild, logger: log}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) error {
	t, err := uc.ticketRepo.FindByChannelID(ctx, cmd.ChannelID)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			// Channel without a row; delete it anyway so the surface is gone.
			return uc.guild.DeleteChannel(ctx, cmd.ChannelID)
		}
		return err
	}

	if err := uc.guild.DeleteChannel(ctx, cmd.ChannelID); err != nil {
		return fmt.Errorf("failed to delete ticket channel: %w", err)
	}
	if err := uc.ticketRepo.Delete(ctx, t.UUID()); err != nil {
		return err
	}

	uc.logger.Infow("ticket closed", "uuid", t.UUID(), "channel_id", cmd.ChannelID)
	return nil
}
