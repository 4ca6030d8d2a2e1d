package discord

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"

	membershipUC "github.com/haven-rp/warden/internal/application/membership/usecases"
)

const membersPageSize = 1000

// registerCommands upserts the guild-scoped application commands. Guild
// scope makes them visible immediately, unlike global commands.
func (b *Bot) registerCommands() error {
	manageMessages := int64(discordgo.PermissionManageMessages)
	administrator := int64(discordgo.PermissionAdministrator)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "checkout",
			Description: "Record a leave of absence",
		},
		{
			Name:                     "clear",
			Description:              "Delete the last N messages in this channel",
			DefaultMemberPermissions: &manageMessages,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "How many messages to delete (1-100)",
					Required:    true,
					MinValue:    float64Ptr(1),
					MaxValue:    100,
				},
			},
		},
		{
			Name:                     "clearall",
			Description:              "Delete every message in this channel",
			DefaultMemberPermissions: &administrator,
		},
		{
			Name:                     "syncmembers",
			Description:              "Backfill the member store from the guild member list",
			DefaultMemberPermissions: &administrator,
		},
		{
			Name:        "changelog",
			Description: "Post the current changelog",
		},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.cfg.Discord.GuildID, cmd); err != nil {
			return fmt.Errorf("failed to register command %q: %w", cmd.Name, err)
		}
	}

	b.logger.Infow("application commands registered", "count", len(commands))
	return nil
}

func (b *Bot) handleClearCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	amount := 0
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			amount = int(opt.IntValue())
		}
	}
	if amount < 1 || amount > 100 {
		b.replyEphemeral(s, i, "Amount must be between 1 and 100.")
		return
	}

	deleted, err := b.purgeMessages(ctx, i.ChannelID, amount)
	if err != nil {
		b.replyError(s, i, err)
		return
	}
	b.replyEphemeral(s, i, fmt.Sprintf("Deleted %d messages.", deleted))
}

// handleClearAllCommand wipes the whole channel. Destructive enough that it
// only works with dev mode enabled.
func (b *Bot) handleClearAllCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.cfg.Discord.DevMode {
		b.replyEphemeral(s, i, "This command is only available in dev mode.")
		return
	}

	total := 0
	for {
		deleted, err := b.purgeMessages(ctx, i.ChannelID, historyPageSize)
		if err != nil {
			b.replyError(s, i, err)
			return
		}
		total += deleted
		if deleted < historyPageSize {
			break
		}
	}
	b.replyEphemeral(s, i, fmt.Sprintf("Deleted %d messages.", total))
}

func (b *Bot) handleSyncMembersCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		b.logger.Warnw("failed to defer sync reply", "error", err)
		return
	}

	records, err := b.fetchAllMembers(ctx)
	if err != nil {
		b.followUpEphemeral(s, i, genericErrorText)
		b.logger.Errorw("failed to list guild members", "error", err)
		return
	}

	stored, err := b.usecases.SyncMembers.Execute(ctx, records)
	if err != nil {
		b.followUpEphemeral(s, i, genericErrorText)
		b.logger.Errorw("member backfill failed", "error", err)
		return
	}

	b.followUpEphemeral(s, i, fmt.Sprintf("Synced %d members into the store.", stored))
}

func (b *Bot) handleChangelogCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	path := b.cfg.Changelog.Path
	if path == "" {
		b.replyEphemeral(s, i, "No changelog is configured.")
		return
	}

	body, err := os.ReadFile(path)
	if err != nil {
		b.replyError(s, i, fmt.Errorf("failed to read changelog: %w", err))
		return
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		b.replyEphemeral(s, i, "The changelog is empty.")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(i.ChannelID, changelogEmbed(text)); err != nil {
		b.replyError(s, i, err)
		return
	}
	b.replyEphemeral(s, i, "Changelog posted.")
}

// purgeMessages bulk-deletes up to limit recent messages and returns how many
// were removed.
func (b *Bot) purgeMessages(ctx context.Context, channelID string, limit int) (int, error) {
	messages, err := b.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to list messages: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	// The bulk endpoint rejects single-message batches.
	if len(messages) == 1 {
		if err := b.session.ChannelMessageDelete(channelID, messages[0].ID, discordgo.WithContext(ctx)); err != nil {
			return 0, fmt.Errorf("failed to delete message: %w", err)
		}
		return 1, nil
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if err := b.session.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx)); err != nil {
		return 0, fmt.Errorf("failed to bulk delete messages: %w", err)
	}
	return len(ids), nil
}

func (b *Bot) fetchAllMembers(ctx context.Context) ([]membershipUC.MemberRecord, error) {
	var records []membershipUC.MemberRecord
	afterID := ""
	for {
		page, err := b.session.GuildMembers(b.cfg.Discord.GuildID, afterID, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, m := range page {
			records = append(records, membershipUC.MemberRecord{
				ID:            m.User.ID,
				Username:      m.User.Username,
				Discriminator: m.User.Discriminator,
				IsBot:         m.User.Bot,
			})
		}
		if len(page) < membersPageSize {
			break
		}
		afterID = page[len(page)-1].User.ID
	}
	return records, nil
}

func (b *Bot) followUpEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		b.logger.Warnw("failed to send follow-up reply", "error", err)
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
