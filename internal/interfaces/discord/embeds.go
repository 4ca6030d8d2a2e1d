package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/haven-rp/warden/internal/domain/ticket"
)

// Embed accent colors.
const (
	colorPrimary = 0x5865F2
	colorSuccess = 0x57F287
	colorWarning = 0xFEE75C
	colorDanger  = 0xED4245
)

func welcomeEmbed(username string, memberCount int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Welcome!",
		Description: fmt.Sprintf("Welcome to the community, **%s**! You are member #%d.", username, memberCount),
		Color:       colorSuccess,
	}
}

func rulesEmbed(rulesURL string) *discordgo.MessageEmbed {
	description := "Be respectful, keep channels on topic, and follow staff instructions. " +
		"Breaking the rules can lead to warnings, timeouts, or a ban."
	if rulesURL != "" {
		description += "\n\nThe full rulebook is linked below."
	}
	return &discordgo.MessageEmbed{
		Title:       "Server Rules",
		Description: description,
		Color:       colorPrimary,
	}
}

func infoEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "How to connect",
		Description: "Use the buttons below to connect to the game server or read up on how " +
			"things work here. If you run into trouble, open a ticket.",
		Color: colorPrimary,
	}
}

func ticketPanelEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Support Tickets",
		Description: "Pick a category below to open a private ticket with the staff team.\n" +
			"One open ticket per member.",
		Color: colorPrimary,
	}
}

func verifyEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Verification",
		Description: "Press the button below to verify yourself and unlock the rest of the " +
			"server. Accounts need to be at least a week old.",
		Color: colorPrimary,
	}
}

func spamNoticeEmbed(userID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Slow down",
		Description: fmt.Sprintf("<@%s> was timed out for flooding this channel.", userID),
		Color:       colorDanger,
	}
}

func ticketOpenedEmbed(category ticket.Category, ownerID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Ticket: %s", category),
		Description: fmt.Sprintf("Hey <@%s>, describe your concern and the staff team will be "+
			"with you shortly.\n\nStaff controls are below.", ownerID),
		Color: colorPrimary,
	}
}

func changelogEmbed(body string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Changelog",
		Description: body,
		Color:       colorWarning,
	}
}
