package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	checkoutUC "github.com/haven-rp/warden/internal/application/checkout/usecases"
	"github.com/haven-rp/warden/internal/domain/checkout"
)

func (b *Bot) handleCheckoutCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customIDCheckoutModal,
			Title:    "Leave of absence",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "checkout_reason",
						Label:     "Why are you away?",
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: checkout.MaxReasonLength,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "checkout_until",
						Label:       "Until when? (dd/mm/yyyy)",
						Style:       discordgo.TextInputShort,
						Placeholder: "24/12/2026",
						Required:    true,
						MinLength:   10,
						MaxLength:   10,
					},
				}},
			},
		},
	})
	if err != nil {
		b.logger.Warnw("failed to open checkout modal", "error", err)
	}
}

func (b *Bot) handleCheckoutModal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	err := b.usecases.CreateCheckout.Execute(ctx, checkoutUC.CreateCheckoutCommand{
		UserID:   user.ID,
		Reason:   modalValue(i, "checkout_reason"),
		Duration: modalValue(i, "checkout_until"),
	})
	if err != nil {
		b.replyError(s, i, err)
		return
	}

	b.replyEphemeral(s, i, "Your leave of absence is recorded. See you when you are back!")
}
