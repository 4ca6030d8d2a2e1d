package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/haven-rp/warden/internal/shared/goroutine"
)

const spamNoticeLifetime = 10 * time.Second

func (b *Bot) onMemberJoin(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if e.GuildID != b.cfg.Discord.GuildID {
		return
	}

	if e.User.Bot {
		err := s.GuildBanCreateWithReason(e.GuildID, e.User.ID, "unsolicited bot account", 0)
		if err != nil {
			b.logger.Errorw("failed to ban joining bot", "user_id", e.User.ID, "error", err)
			return
		}
		b.logger.Infow("banned joining bot", "user_id", e.User.ID, "username", e.User.Username)
		return
	}

	memberCount := 0
	if guild, err := s.State.Guild(e.GuildID); err == nil {
		memberCount = guild.MemberCount
	}

	_, err := s.ChannelMessageSendEmbed(b.cfg.Discord.Channels.Welcome,
		welcomeEmbed(e.User.Username, memberCount))
	if err != nil {
		b.logger.Warnw("failed to post welcome message", "user_id", e.User.ID, "error", err)
	}
}

func (b *Bot) onMemberLeave(s *discordgo.Session, e *discordgo.GuildMemberRemove) {
	if e.GuildID != b.cfg.Discord.GuildID {
		return
	}

	ctx, cancel := context.WithTimeout(b.runCtx, interactionTimeout)
	defer cancel()

	if err := b.usecases.RemoveMember.Execute(ctx, e.User.ID); err != nil {
		b.logger.Errorw("failed to remove departed member", "user_id", e.User.ID, "error", err)
	}
}

// onMessage enforces the identity channel's single-dot convention and feeds
// the spam guard.
func (b *Bot) onMessage(s *discordgo.Session, e *discordgo.MessageCreate) {
	if e.Author == nil || e.Author.Bot || e.GuildID != b.cfg.Discord.GuildID {
		return
	}
	if e.ChannelID != b.cfg.Discord.Channels.Identity {
		return
	}

	// Off-format messages are removed but still count toward the flood
	// window; deleting them must not hide a burst from the guard.
	if e.Content != "." {
		if err := s.ChannelMessageDelete(e.ChannelID, e.ID); err != nil {
			b.logger.Warnw("failed to delete off-format identity message",
				"message_id", e.ID, "error", err)
		}
	}

	if b.spamGuard.Record(e.Author.ID, time.Now()) {
		b.punishSpammer(s, e.ChannelID, e.Author.ID)
	}
}

func (b *Bot) punishSpammer(s *discordgo.Session, channelID, userID string) {
	ctx, cancel := context.WithTimeout(b.runCtx, interactionTimeout)
	defer cancel()

	until := time.Now().Add(b.cfg.Moderation.TimeoutDuration())
	if err := s.GuildMemberTimeout(b.cfg.Discord.GuildID, userID, &until); err != nil {
		b.logger.Errorw("failed to time out spammer", "user_id", userID, "error", err)
	}

	if _, err := b.purgeMessages(ctx, channelID, b.cfg.Moderation.SpamThreshold+1); err != nil {
		b.logger.Warnw("failed to purge spam burst", "channel_id", channelID, "error", err)
	}

	notice, err := s.ChannelMessageSendEmbed(channelID, spamNoticeEmbed(userID))
	if err != nil {
		b.logger.Warnw("failed to post spam notice", "channel_id", channelID, "error", err)
		return
	}

	goroutine.SafeGo(b.logger, "spam-notice-cleanup", func() {
		select {
		case <-time.After(spamNoticeLifetime):
		case <-b.runCtx.Done():
			return
		}
		if err := s.ChannelMessageDelete(channelID, notice.ID); err != nil {
			b.logger.Debugw("failed to delete spam notice", "message_id", notice.ID, "error", err)
		}
	})

	b.logger.Infow("spam burst handled",
		"user_id", userID,
		"channel_id", channelID,
		"timeout", b.cfg.Moderation.TimeoutDuration(),
	)
}
