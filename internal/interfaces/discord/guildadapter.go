package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
	"github.com/haven-rp/warden/internal/shared/logger"
)

const ticketChannelPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// GuildAdapter implements the application ports against one guild. The
// default role shares its id with the guild, which is what the deny
// overwrite below targets.
type GuildAdapter struct {
	session *discordgo.Session
	cfg     *sharedConfig.DiscordConfig
	logger  logger.Interface
}

func NewGuildAdapter(session *discordgo.Session, cfg *sharedConfig.DiscordConfig, log logger.Interface) *GuildAdapter {
	return &GuildAdapter{session: session, cfg: cfg, logger: log}
}

func (a *GuildAdapter) EnsureCategory(ctx context.Context, name string) (string, error) {
	channels, err := a.session.GuildChannels(a.cfg.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to list guild channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch.ID, nil
		}
	}

	created, err := a.session.GuildChannelCreateComplex(a.cfg.GuildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return created.ID, nil
}

func (a *GuildAdapter) CreateTicketChannel(ctx context.Context, categoryID, name, topic, ownerID string) (string, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   a.cfg.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    ownerID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketChannelPermissions,
		},
		{
			ID:    a.cfg.StaffRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: ticketChannelPermissions,
		},
	}

	created, err := a.session.GuildChannelCreateComplex(a.cfg.GuildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                topic,
		ParentID:             categoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create ticket channel: %w", err)
	}
	return created.ID, nil
}

func (a *GuildAdapter) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := a.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete channel %s: %w", channelID, err)
	}
	return nil
}

func (a *GuildAdapter) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := a.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to rename channel %s: %w", channelID, err)
	}
	return nil
}

func (a *GuildAdapter) GrantMemberAccess(ctx context.Context, channelID, userID string) error {
	err := a.session.ChannelPermissionSet(
		channelID, userID,
		discordgo.PermissionOverwriteTypeMember,
		ticketChannelPermissions, 0,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to grant channel access to %s: %w", userID, err)
	}
	return nil
}

func (a *GuildAdapter) RestrictToClaimant(ctx context.Context, channelID, claimantID string) error {
	if err := a.GrantMemberAccess(ctx, channelID, claimantID); err != nil {
		return err
	}

	err := a.session.ChannelPermissionSet(
		channelID, a.cfg.StaffRoleID,
		discordgo.PermissionOverwriteTypeRole,
		0, discordgo.PermissionViewChannel,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to restrict channel to claimant: %w", err)
	}
	return nil
}

func (a *GuildAdapter) DeleteCategoryIfEmpty(ctx context.Context, categoryID string) error {
	channels, err := a.session.GuildChannels(a.cfg.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to list guild channels: %w", err)
	}
	for _, ch := range channels {
		if ch.ParentID == categoryID {
			return nil
		}
	}
	return a.DeleteChannel(ctx, categoryID)
}

func (a *GuildAdapter) CategoryOf(ctx context.Context, channelID string) (string, error) {
	ch, err := a.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return ch.ParentID, nil
}

// Member resolves a guild member, preferring the state cache. Online is
// derived from the presence cache; an absent presence counts as offline.
func (a *GuildAdapter) Member(ctx context.Context, userID string) (*ticketUC.Member, error) {
	m, err := a.session.State.Member(a.cfg.GuildID, userID)
	if err != nil {
		m, err = a.session.GuildMember(a.cfg.GuildID, userID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve member %s: %w", userID, err)
		}
	}

	createdAt, err := discordgo.SnowflakeTimestamp(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid member id %s: %w", userID, err)
	}

	online := false
	if presence, err := a.session.State.Presence(a.cfg.GuildID, userID); err == nil {
		online = presence.Status != discordgo.StatusOffline
	}

	return &ticketUC.Member{
		ID:        m.User.ID,
		Username:  m.User.Username,
		IsBot:     m.User.Bot,
		Online:    online,
		IsStaff:   a.hasRole(m, a.cfg.StaffRoleID),
		CreatedAt: createdAt,
	}, nil
}

func (a *GuildAdapter) GrantResident(ctx context.Context, userID string) error {
	err := a.session.GuildMemberRoleAdd(a.cfg.GuildID, userID, a.cfg.ResidentRoleID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to grant resident role to %s: %w", userID, err)
	}
	return nil
}

func (a *GuildAdapter) RevokeResident(ctx context.Context, userID string) error {
	err := a.session.GuildMemberRoleRemove(a.cfg.GuildID, userID, a.cfg.ResidentRoleID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to revoke resident role from %s: %w", userID, err)
	}
	return nil
}

func (a *GuildAdapter) DirectMessage(ctx context.Context, userID, content string) error {
	dm, err := a.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct channel with %s: %w", userID, err)
	}
	if _, err := a.session.ChannelMessageSend(dm.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", userID, err)
	}
	return nil
}

func (a *GuildAdapter) hasRole(m *discordgo.Member, roleID string) bool {
	for _, r := range m.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
