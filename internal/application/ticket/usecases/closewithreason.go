package usecases

import (
	"context"
	"fmt"

	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// ReasonLogPort appends close reasons to the per-user reason log.
type ReasonLogPort interface {
	Append(userID, ticketShortID, category, closedBy, reason string) error
}

// MaxReasonLength bounds the close-reason form field.
const MaxReasonLength = 200

type CloseWithReasonCommand struct {
	ChannelID string
	CloserID  string
	Reason    string
}

// CloseWithReasonUseCase closes a ticket recording why: the reason is
// appended to the per-user log, the channel and row are removed, and the
// parent category is dropped once empty. Transcript delivery happens in the
// interaction layer before the channel disappears.
type CloseWithReasonUseCase struct {
	ticketRepo ticket.Repository
	guild      GuildPort
	reasonLog  ReasonLogPort
	logger     logger.Interface
}

func NewCloseWithReasonUseCase(
	ticketRepo ticket.Repository,
	guild GuildPort,
	reasonLog ReasonLogPort,
	log logger.Interface,
) *CloseWithReasonUseCase {
	return &CloseWithReasonUseCase{
		ticketRepo: ticketRepo,
		guild:      guild,
		reasonLog:  reasonLog,
		logger:     log,
	}
}

func (uc *CloseWithReasonUseCase) Execute(ctx context.Context, cmd CloseWithReasonCommand) error {
	if cmd.Reason == "" {
		return fmt.Errorf("reason is required")
	}
	if len(cmd.Reason) > MaxReasonLength {
		return fmt.Errorf("reason exceeds maximum length of %d characters", MaxReasonLength)
	}

	t, err := uc.ticketRepo.FindByChannelID(ctx, cmd.ChannelID)
	if err != nil {
		return err
	}

	if err := uc.reasonLog.Append(t.UserID(), t.ShortID(), t.Category().String(), cmd.CloserID, cmd.Reason); err != nil {
		// The close still proceeds; losing one log line beats a stuck ticket.
		uc.logger.Warnw("failed to append reason log", "uuid", t.UUID(), "error", err)
	}

	categoryID, err := uc.guild.CategoryOf(ctx, cmd.ChannelID)
	if err != nil {
		uc.logger.Warnw("failed to resolve parent category", "channel_id", cmd.ChannelID, "error", err)
	}

	if err := uc.guild.DeleteChannel(ctx, cmd.ChannelID); err != nil {
		return fmt.Errorf("failed to delete ticket channel: %w", err)
	}
	if err := uc.ticketRepo.Delete(ctx, t.UUID()); err != nil {
		return err
	}

	if categoryID != "" {
		if err := uc.guild.DeleteCategoryIfEmpty(ctx, categoryID); err != nil {
			uc.logger.Warnw("failed to clean up empty category", "category_id", categoryID, "error", err)
		}
	}

	uc.logger.Infow("ticket closed with reason",
		"uuid", t.UUID(),
		"channel_id", cmd.ChannelID,
		"closed_by", cmd.CloserID,
	)
	return nil
}
