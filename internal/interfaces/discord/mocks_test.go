package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	"github.com/haven-rp/warden/internal/domain/moderation"
	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/infrastructure/config"
	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
	"github.com/haven-rp/warden/internal/shared/logger"
)

const (
	testGuildID         = "guild-1"
	testIdentityChannel = "chan-identity"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// recordingTransport captures every REST call the session attempts and fails
// it immediately, so handlers can run without a reachable API.
type recordingTransport struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body := ""
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		_ = req.Body.Close()
		body = string(raw)
	}

	rt.mu.Lock()
	rt.requests = append(rt.requests, recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   body,
	})
	rt.mu.Unlock()

	return nil, errors.New("transport disabled")
}

func (rt *recordingTransport) recorded() []recordedRequest {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]recordedRequest, len(rt.requests))
	copy(out, rt.requests)
	return out
}

func newTestBot(t *testing.T, guard *moderation.SpamGuard) (*Bot, *recordingTransport) {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	rt := &recordingTransport{}
	session.Client = &http.Client{Transport: rt}

	cfg := &config.Config{}
	cfg.Discord.GuildID = testGuildID
	cfg.Discord.StaffRoleID = "role-staff"
	cfg.Discord.Channels.Identity = testIdentityChannel
	cfg.Moderation = sharedConfig.ModerationConfig{
		SpamWindowSeconds: 10,
		SpamThreshold:     5,
		TimeoutSeconds:    300,
	}

	return &Bot{
		session:   session,
		cfg:       cfg,
		logger:    logger.NewLogger(),
		spamGuard: guard,
		exports:   ticketUC.NewExportGuard(),
		runCtx:    context.Background(),
	}, rt
}

func identityMessage(id, userID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        id,
		ChannelID: testIdentityChannel,
		GuildID:   testGuildID,
		Content:   content,
		Author:    &discordgo.User{ID: userID, Username: "member"},
	}}
}

func modalSubmission(customID, fieldID, value string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction-1",
		Type:      discordgo.InteractionModalSubmit,
		GuildID:   testGuildID,
		ChannelID: "chan-ticket",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "staff-1", Username: "staff"}},
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: customID,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: fieldID, Value: value},
				}},
			},
		},
	}}
}

type stubTicketRepo struct{}

func (stubTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error { return nil }
func (stubTicketRepo) FindByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}
func (stubTicketRepo) FindByUserID(ctx context.Context, userID string) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}
func (stubTicketRepo) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	return nil, ticket.ErrNotFound
}
func (stubTicketRepo) Delete(ctx context.Context, uuid string) error { return nil }

type stubReasonLog struct{}

func (stubReasonLog) Append(userID, ticketShortID, category, closedBy, reason string) error {
	return nil
}
