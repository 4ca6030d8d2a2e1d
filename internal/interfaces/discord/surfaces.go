package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/haven-rp/warden/internal/domain/ticket"
)

// postSurfaces refreshes the persistent controls: the rules embed, the info
// embed with its link buttons, the ticket panel, and the verify button. Each
// surface replaces the bot's previous post so restarts do not stack copies.
func (b *Bot) postSurfaces() {
	channels := b.cfg.Discord.Channels

	b.repostSurface(channels.Rules, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{rulesEmbed(b.cfg.GameServer.RulesURL)},
		Components: b.rulesComponents(),
	})

	b.repostSurface(channels.Info, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{infoEmbed()},
		Components: b.infoComponents(),
	})

	b.repostSurface(channels.Ticket, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{ticketPanelEmbed()},
		Components: categorySelectComponents(),
	})

	b.repostSurface(channels.Verify, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{verifyEmbed()},
		Components: verifyComponents(),
	})
}

// repostSurface removes the previous bot message in the channel and posts the
// replacement. Failures are logged and skipped; a missing surface must not
// stop startup.
func (b *Bot) repostSurface(channelID string, msg *discordgo.MessageSend) {
	messages, err := b.session.ChannelMessages(channelID, 10, "", "", "")
	if err != nil {
		b.logger.Warnw("failed to read surface channel", "channel_id", channelID, "error", err)
	} else {
		for _, m := range messages {
			if m.Author != nil && m.Author.ID == b.session.State.User.ID {
				if err := b.session.ChannelMessageDelete(channelID, m.ID); err != nil {
					b.logger.Warnw("failed to delete stale surface message",
						"channel_id", channelID, "message_id", m.ID, "error", err)
				}
			}
		}
	}

	if _, err := b.session.ChannelMessageSendComplex(channelID, msg); err != nil {
		b.logger.Errorw("failed to post surface", "channel_id", channelID, "error", err)
	}
}

func (b *Bot) rulesComponents() []discordgo.MessageComponent {
	if b.cfg.GameServer.RulesURL == "" {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label: "Full rulebook",
					Style: discordgo.LinkButton,
					URL:   b.cfg.GameServer.RulesURL,
				},
			},
		},
	}
}

func (b *Bot) infoComponents() []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	if b.cfg.GameServer.ConnectURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Connect to the server",
			Style: discordgo.LinkButton,
			URL:   b.cfg.GameServer.ConnectURL,
		})
	}
	if b.cfg.GameServer.RulesURL != "" {
		buttons = append(buttons, discordgo.Button{
			Label: "Rules",
			Style: discordgo.LinkButton,
			URL:   b.cfg.GameServer.RulesURL,
		})
	}
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func categorySelectComponents() []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(ticket.CategoryOptions()))
	for _, opt := range ticket.CategoryOptions() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       opt.Category.String(),
			Value:       opt.Category.String(),
			Description: opt.Description,
			Emoji:       &discordgo.ComponentEmoji{Name: opt.Emoji},
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    customIDCategorySelect,
					Placeholder: "Choose a ticket category",
					Options:     options,
				},
			},
		},
	}
}

func verifyComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Verify",
					Style:    discordgo.SuccessButton,
					CustomID: customIDVerifyButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "✅"},
				},
			},
		},
	}
}

// ticketControls is the staff control panel posted into every ticket channel.
func ticketControls() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Claim",
					Style:    discordgo.PrimaryButton,
					CustomID: customIDTicketClaim,
					Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
				},
				discordgo.Button{
					Label:    "Forward",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDTicketForward,
					Emoji:    &discordgo.ComponentEmoji{Name: "📤"},
				},
				discordgo.Button{
					Label:    "Rename",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDTicketRename,
					Emoji:    &discordgo.ComponentEmoji{Name: "✏️"},
				},
				discordgo.Button{
					Label:    "Transcript",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDTicketTranscript,
					Emoji:    &discordgo.ComponentEmoji{Name: "📄"},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close",
					Style:    discordgo.DangerButton,
					CustomID: customIDTicketClose,
					Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
				},
				discordgo.Button{
					Label:    "Close with reason",
					Style:    discordgo.DangerButton,
					CustomID: customIDTicketCloseReason,
					Emoji:    &discordgo.ComponentEmoji{Name: "📝"},
				},
			},
		},
	}
}

func closeConfirmComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close ticket",
					Style:    discordgo.DangerButton,
					CustomID: customIDCloseConfirm,
				},
				discordgo.Button{
					Label:    "Keep it open",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDCloseCancel,
				},
			},
		},
	}
}
