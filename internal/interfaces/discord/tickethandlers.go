package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
)

func (b *Bot) handleCategorySelect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	user := interactionUser(i)

	result, err := b.usecases.CreateTicket.Execute(ctx, ticketUC.CreateTicketCommand{
		UserID:   user.ID,
		Username: user.Username,
		Category: values[0],
		GuildID:  b.cfg.Discord.GuildID,
	})
	if err != nil {
		b.replyError(s, i, err)
		return
	}

	if _, err := s.ChannelMessageSendComplex(result.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{ticketOpenedEmbed(result.Category, user.ID)},
		Components: ticketControls(),
	}); err != nil {
		b.logger.Warnw("failed to post ticket control panel",
			"channel_id", result.ChannelID, "error", err)
	}

	b.replyEphemeral(s, i, fmt.Sprintf("Your ticket is ready: <#%s>", result.ChannelID))
}

func (b *Bot) handleClaimButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	err := b.usecases.ClaimTicket.Execute(ctx, ticketUC.ClaimTicketCommand{
		ChannelID:  i.ChannelID,
		ClaimantID: user.ID,
	})
	if err != nil {
		b.replyError(s, i, err)
		return
	}

	b.replyEphemeral(s, i, "Ticket claimed. Only you and the member can see it now.")
	if _, err := s.ChannelMessageSend(i.ChannelID,
		fmt.Sprintf("🙋 <@%s> has taken over this ticket.", user.ID)); err != nil {
		b.logger.Warnw("failed to announce claim", "channel_id", i.ChannelID, "error", err)
	}
}

func (b *Bot) openForwardModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.openModal(s, i, customIDForwardModal, "Forward ticket", discordgo.TextInput{
		CustomID:    "target_user_id",
		Label:       "User ID of the member to add",
		Style:       discordgo.TextInputShort,
		Placeholder: "e.g. 190550369125335040",
		Required:    true,
		MaxLength:   20,
	})
}

func (b *Bot) handleForwardModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	result, err := b.usecases.ForwardTicket.Execute(ctx, ticketUC.ForwardTicketCommand{
		ChannelID: i.ChannelID,
		StaffID:   user.ID,
		TargetID:  modalValue(i, "target_user_id"),
	})
	if err != nil {
		b.replyError(s, i, err)
		return
	}

	b.replyEphemeral(s, i, fmt.Sprintf("Added **%s** to this ticket.", result.TargetUsername))
	if _, err := s.ChannelMessageSend(i.ChannelID,
		fmt.Sprintf("📤 <@%s> was added to this ticket.", result.TargetID)); err != nil {
		b.logger.Warnw("failed to announce forward", "channel_id", i.ChannelID, "error", err)
	}
}

func (b *Bot) openRenameModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.openModal(s, i, customIDRenameModal, "Rename ticket", discordgo.TextInput{
		CustomID:  "channel_name",
		Label:     "New channel name",
		Style:     discordgo.TextInputShort,
		Required:  true,
		MaxLength: ticketUC.MaxChannelNameLength,
	})
}

func (b *Bot) handleRenameModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	err := b.usecases.RenameTicket.Execute(ctx, ticketUC.RenameTicketCommand{
		ChannelID: i.ChannelID,
		StaffID:   user.ID,
		Name:      modalValue(i, "channel_name"),
	})
	if err != nil {
		b.replyError(s, i, err)
		return
	}
	b.replyEphemeral(s, i, "Channel renamed.")
}

func (b *Bot) openCloseConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "Close this ticket? The channel will be deleted.",
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: closeConfirmComponents(),
		},
	})
	if err != nil {
		b.logger.Warnw("failed to open close confirmation", "error", err)
	}
}

func (b *Bot) handleCloseConfirm(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Acknowledge before deleting; the channel the interaction lives in is
	// about to disappear.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "Closing ticket...",
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		b.logger.Warnw("failed to acknowledge close", "error", err)
	}

	if err := b.usecases.CloseTicket.Execute(ctx, ticketUC.CloseTicketCommand{
		ChannelID: i.ChannelID,
	}); err != nil {
		b.logger.Errorw("failed to close ticket", "channel_id", i.ChannelID, "error", err)
	}
}

func (b *Bot) handleCloseCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "Ticket stays open.",
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		b.logger.Warnw("failed to cancel close", "error", err)
	}
}

func (b *Bot) openReasonModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.openModal(s, i, customIDReasonModal, "Close with reason", discordgo.TextInput{
		CustomID:  "close_reason",
		Label:     "Why is this ticket being closed?",
		Style:     discordgo.TextInputParagraph,
		Required:  true,
		MaxLength: ticketUC.MaxReasonLength,
	})
}

func (b *Bot) handleReasonModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	reason := modalValue(i, "close_reason")

	b.replyEphemeral(s, i, fmt.Sprintf(
		"Closing ticket with reason: %s\nThe transcript is on its way to your direct messages.", reason))

	// Transcript first; once the close runs the history is gone.
	if err := b.exportTranscript(ctx, i.ChannelID, user.ID); err != nil {
		b.logger.Warnw("transcript export failed before close",
			"channel_id", i.ChannelID, "error", err)
	}

	if err := b.usecases.CloseWithReason.Execute(ctx, ticketUC.CloseWithReasonCommand{
		ChannelID: i.ChannelID,
		CloserID:  user.ID,
		Reason:    reason,
	}); err != nil {
		b.logger.Errorw("failed to close ticket with reason",
			"channel_id", i.ChannelID, "error", err)
	}
}

// openModal shows a single-field modal.
func (b *Bot) openModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string, input discordgo.TextInput) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}},
			},
		},
	})
	if err != nil {
		b.logger.Warnw("failed to open modal", "custom_id", customID, "error", err)
	}
}

// modalValue extracts a text input's value from a modal submission.
func modalValue(i *discordgo.InteractionCreate, customID string) string {
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
