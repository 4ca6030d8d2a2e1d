// Package discord is the platform adapter: session lifecycle, event
// handlers, interactive controls, and the channel status updaters.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	checkoutUC "github.com/haven-rp/warden/internal/application/checkout/usecases"
	membershipUC "github.com/haven-rp/warden/internal/application/membership/usecases"
	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	verificationUC "github.com/haven-rp/warden/internal/application/verification/usecases"
	"github.com/haven-rp/warden/internal/domain/moderation"
	"github.com/haven-rp/warden/internal/infrastructure/config"
	"github.com/haven-rp/warden/internal/infrastructure/status"
	"github.com/haven-rp/warden/internal/shared/goroutine"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// UseCases bundles the workflows the interaction handlers dispatch into.
type UseCases struct {
	CreateTicket    *ticketUC.CreateTicketUseCase
	ClaimTicket     *ticketUC.ClaimTicketUseCase
	ForwardTicket   *ticketUC.ForwardTicketUseCase
	RenameTicket    *ticketUC.RenameTicketUseCase
	CloseTicket     *ticketUC.CloseTicketUseCase
	CloseWithReason *ticketUC.CloseWithReasonUseCase
	LookupTicket    *ticketUC.LookupTicketUseCase
	VerifyMember    *verificationUC.VerifyMemberUseCase
	CreateCheckout  *checkoutUC.CreateCheckoutUseCase
	RemoveMember    *membershipUC.RemoveMemberUseCase
	SyncMembers     *membershipUC.SyncMembersUseCase
}

// Bot owns the gateway session and everything attached to it.
type Bot struct {
	session   *discordgo.Session
	cfg       *config.Config
	logger    logger.Interface
	usecases  UseCases
	spamGuard *moderation.SpamGuard
	statusCli *status.Client
	schedule  *status.Schedule
	exports   *ticketUC.ExportGuard

	runCtx    context.Context
	runCancel context.CancelFunc
	readyOnce sync.Once
}

func NewBot(
	cfg *config.Config,
	log logger.Interface,
	usecases UseCases,
	spamGuard *moderation.SpamGuard,
	statusCli *status.Client,
	schedule *status.Schedule,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildPresences |
		discordgo.IntentMessageContent

	session.State.TrackPresences = true

	return &Bot{
		session:   session,
		cfg:       cfg,
		logger:    log,
		usecases:  usecases,
		spamGuard: spamGuard,
		statusCli: statusCli,
		schedule:  schedule,
		exports:   ticketUC.NewExportGuard(),
	}, nil
}

// Adapter returns the port implementation backed by this session. The
// use cases are constructed against it before Start is called.
func (b *Bot) Adapter() *GuildAdapter {
	return NewGuildAdapter(b.session, &b.cfg.Discord, b.logger)
}

// SetUseCases wires the workflows after the adapter-dependent constructors ran.
func (b *Bot) SetUseCases(usecases UseCases) {
	b.usecases = usecases
}

// Start opens the gateway connection and registers every handler. Blocks
// only for the connection handshake; event dispatch runs on the session's
// goroutines until Stop.
func (b *Bot) Start(ctx context.Context) error {
	b.runCtx, b.runCancel = context.WithCancel(ctx)

	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMemberJoin)
	b.session.AddHandler(b.onMemberLeave)
	b.session.AddHandler(b.onMessage)
	b.session.AddHandler(b.onInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Infow("gateway connection established")
	return nil
}

// Stop cancels the background loops and closes the gateway connection.
func (b *Bot) Stop() error {
	if b.runCancel != nil {
		b.runCancel()
	}
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close gateway connection: %w", err)
	}
	b.logger.Infow("gateway connection closed")
	return nil
}

// Session exposes the underlying session for the ops endpoint's stats.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// GuildCount reports how many guilds the session is connected to.
func (b *Bot) GuildCount() int {
	return len(b.session.State.Guilds)
}

// MemberCount reports the cached member count of the home guild.
func (b *Bot) MemberCount() int {
	guild, err := b.session.State.Guild(b.cfg.Discord.GuildID)
	if err != nil {
		return 0
	}
	return guild.MemberCount
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Infow("session ready",
		"bot", r.User.Username,
		"bot_id", r.User.ID,
		"guilds", len(r.Guilds),
	)

	// Ready fires again on every reconnect; surfaces and loops start once.
	b.readyOnce.Do(func() {
		b.postSurfaces()

		goroutine.SafeGo(b.logger, "status-updater", func() {
			b.runStatusUpdater(b.runCtx)
		})
		goroutine.SafeGo(b.logger, "restart-updater", func() {
			b.runRestartUpdater(b.runCtx)
		})
		goroutine.SafeGo(b.logger, "members-updater", func() {
			b.runMembersUpdater(b.runCtx)
		})
		goroutine.SafeGo(b.logger, "presence-updater", func() {
			b.runPresenceUpdater(b.runCtx)
		})
	})
}
