package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	verificationUC "github.com/haven-rp/warden/internal/application/verification/usecases"
	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/domain/ticket"
)

// Component and modal identifiers. These are wire-visible: changing one
// invalidates controls on already-posted messages.
const (
	customIDCategorySelect = "ticket_category_select"

	customIDTicketClaim       = "ticket_claim"
	customIDTicketForward     = "ticket_forward"
	customIDTicketRename      = "ticket_rename"
	customIDTicketTranscript  = "ticket_transcript"
	customIDTicketClose       = "ticket_close"
	customIDTicketCloseReason = "ticket_close_reason"

	customIDCloseConfirm = "ticket_close_confirm"
	customIDCloseCancel  = "ticket_close_cancel"

	customIDForwardModal = "ticket_forward_modal"
	customIDRenameModal  = "ticket_rename_modal"
	customIDReasonModal  = "ticket_reason_modal"

	customIDVerifyButton  = "verify_button"
	customIDCheckoutModal = "checkout_modal"
)

const interactionTimeout = 30 * time.Second

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorw("interaction handler panicked", "panic", r)
			b.replyEphemeral(s, i, "Something went wrong handling that action.")
		}
	}()

	ctx, cancel := context.WithTimeout(b.runCtx, interactionTimeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.dispatchCommand(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		b.dispatchComponent(ctx, s, i)
	case discordgo.InteractionModalSubmit:
		b.dispatchModal(ctx, s, i)
	}
}

func (b *Bot) dispatchCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "checkout":
		b.handleCheckoutCommand(s, i)
	case "clear":
		b.handleClearCommand(ctx, s, i)
	case "clearall":
		b.handleClearAllCommand(ctx, s, i)
	case "syncmembers":
		b.handleSyncMembersCommand(ctx, s, i)
	case "changelog":
		b.handleChangelogCommand(s, i)
	}
}

func (b *Bot) dispatchComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.MessageComponentData().CustomID {
	case customIDCategorySelect:
		b.handleCategorySelect(ctx, s, i)
	case customIDVerifyButton:
		b.handleVerifyButton(ctx, s, i)
	case customIDTicketClaim:
		b.handleClaimButton(ctx, s, i)
	case customIDTicketForward:
		b.openForwardModal(s, i)
	case customIDTicketRename:
		b.openRenameModal(s, i)
	case customIDTicketTranscript:
		b.handleTranscriptButton(ctx, s, i)
	case customIDTicketClose:
		b.openCloseConfirm(s, i)
	case customIDTicketCloseReason:
		b.openReasonModal(s, i)
	case customIDCloseConfirm:
		b.handleCloseConfirm(ctx, s, i)
	case customIDCloseCancel:
		b.handleCloseCancel(s, i)
	}
}

func (b *Bot) dispatchModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ModalSubmitData().CustomID {
	case customIDForwardModal:
		b.handleForwardModal(ctx, s, i)
	case customIDRenameModal:
		b.handleRenameModal(ctx, s, i)
	case customIDReasonModal:
		b.handleReasonModal(ctx, s, i)
	case customIDCheckoutModal:
		b.handleCheckoutModal(ctx, s, i)
	}
}

// replyEphemeral answers the interaction with a private message. Errors are
// logged only; there is nothing further to do with a failed reply.
func (b *Bot) replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Warnw("failed to send interaction reply", "error", err)
	}
}

// replyError maps workflow errors to user-facing text; anything unmapped
// becomes a generic failure notice plus a log line.
func (b *Bot) replyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	b.replyEphemeral(s, i, userFacingError(err))
	if userFacingError(err) == genericErrorText {
		b.logger.Errorw("interaction failed", "custom_id", interactionID(i), "error", err)
	}
}

const genericErrorText = "Something went wrong. Please try again or contact staff."

func userFacingError(err error) string {
	switch {
	case errors.Is(err, ticket.ErrAlreadyOpen):
		return "You already have an open ticket."
	case errors.Is(err, ticket.ErrNotFound):
		return "This channel is not a ticket."
	case errors.Is(err, ticketUC.ErrStaffMember):
		return "Staff members cannot open tickets."
	case errors.Is(err, ticketUC.ErrNotStaff):
		return "Only staff members can use this control."
	case errors.Is(err, ticketUC.ErrInvalidUserID):
		return "That is not a valid user ID of a member on this server."
	case errors.Is(err, ticketUC.ErrBotAccount):
		return "Tickets cannot be forwarded to bots."
	case errors.Is(err, ticketUC.ErrMemberOffline):
		return "That member is offline right now."
	case errors.Is(err, ticketUC.ErrAlreadyStaff):
		return "That member is staff and already sees this ticket."
	case errors.Is(err, ticketUC.ErrInvalidCategory):
		return "Unknown ticket category."
	case errors.Is(err, ticketUC.ErrNameTooLong):
		return "That channel name is too long."
	case errors.Is(err, verificationUC.ErrAlreadyVerified):
		return "You are already verified."
	case errors.Is(err, verificationUC.ErrAccountTooYoung):
		return "Your account is too new to verify here. Try again in a few days."
	case errors.Is(err, checkout.ErrInvalidDate):
		return "The date must look like dd/mm/yyyy, for example 24/12/2026."
	case errors.Is(err, checkout.ErrDateNotFuture):
		return "The end date must be in the future."
	default:
		return genericErrorText
	}
}

func interactionID(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	default:
		return ""
	}
}

// interactionUser returns the acting user for guild and DM interactions alike.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
