package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Updater cadences. The status channel polls aggressively; renames are only
// issued when the computed name actually changed, so the platform's rename
// rate limit is not in play on quiet days.
const (
	statusUpdateInterval  = 2 * time.Second
	restartUpdateInterval = 120 * time.Second
	membersUpdateInterval = time.Hour
	presenceInterval      = 60 * time.Second
	updaterBackoff        = 10 * time.Second
)

// runChannelUpdater drives one display channel: locks it down once, then
// keeps its name in sync with the computed line. Errors back off for a fixed
// delay instead of the regular interval.
func (b *Bot) runChannelUpdater(ctx context.Context, name, channelID string, interval time.Duration, compute func(context.Context) (string, error)) {
	if err := b.lockDisplayChannel(channelID); err != nil {
		b.logger.Warnw("failed to lock display channel",
			"updater", name, "channel_id", channelID, "error", err)
	}

	lastName := ""
	delay := time.Duration(0)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = interval

		line, err := compute(ctx)
		if err != nil {
			b.logger.Warnw("updater compute failed", "updater", name, "error", err)
			delay = updaterBackoff
			continue
		}
		if line == lastName {
			continue
		}

		if _, err := b.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: line}); err != nil {
			b.logger.Warnw("updater rename failed",
				"updater", name, "channel_id", channelID, "error", err)
			delay = updaterBackoff
			continue
		}
		lastName = line
		b.logger.Debugw("display channel updated", "updater", name, "name", line)
	}
}

// lockDisplayChannel makes the channel read-only and unjoinable for everyone
// while the guild owner keeps visibility.
func (b *Bot) lockDisplayChannel(channelID string) error {
	guild, err := b.session.State.Guild(b.cfg.Discord.GuildID)
	if err != nil {
		return fmt.Errorf("guild not in state: %w", err)
	}

	err = b.session.ChannelPermissionSet(
		channelID, b.cfg.Discord.GuildID,
		discordgo.PermissionOverwriteTypeRole,
		0, discordgo.PermissionVoiceConnect|discordgo.PermissionSendMessages,
	)
	if err != nil {
		return fmt.Errorf("failed to deny default role: %w", err)
	}

	err = b.session.ChannelPermissionSet(
		channelID, guild.OwnerID,
		discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel, 0,
	)
	if err != nil {
		return fmt.Errorf("failed to allow guild owner: %w", err)
	}
	return nil
}

func (b *Bot) runStatusUpdater(ctx context.Context) {
	b.runChannelUpdater(ctx, "status", b.cfg.Discord.Channels.Status, statusUpdateInterval,
		func(ctx context.Context) (string, error) {
			return b.statusCli.StatusLine(ctx), nil
		})
}

func (b *Bot) runRestartUpdater(ctx context.Context) {
	b.runChannelUpdater(ctx, "restart", b.cfg.Discord.Channels.Restart, restartUpdateInterval,
		func(ctx context.Context) (string, error) {
			next, ok, err := b.schedule.NextRestart(time.Now())
			if err != nil {
				return "", err
			}
			if !ok {
				return "🔄 No restart scheduled", nil
			}
			return fmt.Sprintf("🔄 Next restart: %s", next.Format("15:04")), nil
		})
}

// runMembersUpdater shows the human member count; bot accounts are not
// counted.
func (b *Bot) runMembersUpdater(ctx context.Context) {
	b.runChannelUpdater(ctx, "members", b.cfg.Discord.Channels.Members, membersUpdateInterval,
		func(ctx context.Context) (string, error) {
			records, err := b.fetchAllMembers(ctx)
			if err != nil {
				return "", err
			}
			humans := 0
			for _, r := range records {
				if !r.IsBot {
					humans++
				}
			}
			return fmt.Sprintf("👥 Members: %d", humans), nil
		})
}

// runPresenceUpdater keeps the bot's activity text on the live player count.
func (b *Bot) runPresenceUpdater(ctx context.Context) {
	ticker := time.NewTicker(presenceInterval)
	defer ticker.Stop()

	for {
		line := b.statusCli.PlayersLine(ctx)
		if err := b.session.UpdateWatchStatus(0, line); err != nil {
			b.logger.Warnw("failed to update presence", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
