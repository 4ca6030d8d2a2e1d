package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	verificationUC "github.com/haven-rp/warden/internal/application/verification/usecases"
)

func (b *Bot) handleVerifyButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	createdAt, err := discordgo.SnowflakeTimestamp(user.ID)
	if err != nil {
		b.replyError(s, i, err)
		return
	}

	err = b.usecases.VerifyMember.Execute(ctx, verificationUC.VerifyMemberCommand{
		UserID:           user.ID,
		Username:         user.Username,
		Discriminator:    user.Discriminator,
		AccountCreatedAt: createdAt,
	})
	if err != nil {
		if errors.Is(err, verificationUC.ErrAccountTooYoung) {
			b.replyEphemeral(s, i, fmt.Sprintf(
				"Your account is too new to verify here. Reach out in <#%s> if you think this is a mistake.",
				b.cfg.Discord.Channels.SupportWaiting))
			return
		}
		b.replyError(s, i, err)
		return
	}

	b.replyEphemeral(s, i, "You are verified. Welcome aboard!")
}
