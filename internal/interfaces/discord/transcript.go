package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
)

const historyPageSize = 100

func (b *Bot) handleTranscriptButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)

	if _, err := b.usecases.LookupTicket.ByChannel(ctx, i.ChannelID); err != nil {
		b.replyError(s, i, err)
		return
	}

	b.replyEphemeral(s, i, "Building the transcript, check your direct messages.")

	if err := b.exportTranscript(ctx, i.ChannelID, user.ID); err != nil {
		b.logger.Warnw("transcript export failed", "channel_id", i.ChannelID, "error", err)
	}
}

// exportTranscript renders the channel history and delivers it as a file via
// direct message. At most one export per channel runs at a time; a concurrent
// request is dropped.
func (b *Bot) exportTranscript(ctx context.Context, channelID, recipientID string) error {
	if !b.exports.TryAcquire(channelID) {
		return fmt.Errorf("transcript export already running for channel %s", channelID)
	}
	defer b.exports.Release(channelID)

	messages, err := b.fetchHistory(ctx, channelID)
	if err != nil {
		return fmt.Errorf("failed to fetch channel history: %w", err)
	}

	content := ticketUC.RenderTranscript(messages)
	if content == "" {
		content = "(no messages)\n"
	}

	dm, err := b.session.UserChannelCreate(recipientID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct channel: %w", err)
	}

	_, err = b.session.ChannelMessageSendComplex(dm.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("Transcript of <#%s>:", channelID),
		Files: []*discordgo.File{{
			Name:        fmt.Sprintf("transcript-%s.txt", channelID),
			ContentType: "text/plain",
			Reader:      strings.NewReader(content),
		}},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to deliver transcript: %w", err)
	}
	return nil
}

// fetchHistory pages through the channel oldest-last and returns the messages
// in chronological order.
func (b *Bot) fetchHistory(ctx context.Context, channelID string) ([]ticketUC.TranscriptMessage, error) {
	var collected []*discordgo.Message
	beforeID := ""
	for {
		page, err := b.session.ChannelMessages(channelID, historyPageSize, beforeID, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		collected = append(collected, page...)
		if len(page) < historyPageSize {
			break
		}
		beforeID = page[len(page)-1].ID
	}

	messages := make([]ticketUC.TranscriptMessage, 0, len(collected))
	for idx := len(collected) - 1; idx >= 0; idx-- {
		messages = append(messages, toTranscriptMessage(collected[idx]))
	}
	return messages, nil
}

func toTranscriptMessage(m *discordgo.Message) ticketUC.TranscriptMessage {
	author := "unknown"
	if m.Author != nil {
		author = m.Author.Username
	}

	attachments := make([]ticketUC.TranscriptAttachment, 0, len(m.Attachments))
	for _, att := range m.Attachments {
		attachments = append(attachments, ticketUC.TranscriptAttachment{
			Filename: att.Filename,
			URL:      att.URL,
			IsImage:  strings.HasPrefix(att.ContentType, "image/") || att.Width > 0,
		})
	}

	return ticketUC.TranscriptMessage{
		Author:      author,
		Timestamp:   m.Timestamp,
		EditedAt:    m.EditedTimestamp,
		Content:     m.Content,
		Attachments: attachments,
	}
}
