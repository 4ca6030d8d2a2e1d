package usecases

import (
	"context"

	"github.com/haven-rp/warden/internal/domain/ticket"
)

// LookupTicketUseCase resolves the ticket row backing a channel. The control
// panel handlers use it before destructive actions.
type LookupTicketUseCase struct {
	ticketRepo ticket.Repository
}

func NewLookupTicketUseCase(ticketRepo ticket.Repository) *LookupTicketUseCase {
	return &LookupTicketUseCase{ticketRepo: ticketRepo}
}

func (uc *LookupTicketUseCase) ByChannel(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	return uc.ticketRepo.FindByChannelID(ctx, channelID)
}
