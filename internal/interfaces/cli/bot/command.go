// Package bot is the main entrypoint: it wires the store, the workflows, the
// gateway session, the scheduler, and the ops endpoint, then runs until
// signalled.
package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	checkoutUC "github.com/haven-rp/warden/internal/application/checkout/usecases"
	membershipUC "github.com/haven-rp/warden/internal/application/membership/usecases"
	ticketUC "github.com/haven-rp/warden/internal/application/ticket/usecases"
	verificationUC "github.com/haven-rp/warden/internal/application/verification/usecases"
	"github.com/haven-rp/warden/internal/domain/moderation"
	"github.com/haven-rp/warden/internal/infrastructure/config"
	"github.com/haven-rp/warden/internal/infrastructure/database"
	"github.com/haven-rp/warden/internal/infrastructure/migrations"
	"github.com/haven-rp/warden/internal/infrastructure/reasonlog"
	"github.com/haven-rp/warden/internal/infrastructure/repository"
	"github.com/haven-rp/warden/internal/infrastructure/scheduler"
	"github.com/haven-rp/warden/internal/infrastructure/status"
	"github.com/haven-rp/warden/internal/interfaces/discord"
	opsHTTP "github.com/haven-rp/warden/internal/interfaces/http"
	"github.com/haven-rp/warden/internal/shared/goroutine"
	"github.com/haven-rp/warden/internal/shared/logger"
)

const shutdownTimeout = 15 * time.Second

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the community assistant",
		Long:  `Connect to the guild and run the ticket, verification, checkout, and moderation workflows.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting assistant", "dev_mode", cfg.Discord.DevMode)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.Up(database.Get()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	db := database.Get()
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	reasonStore := reasonlog.NewStore(cfg.Tickets.ReasonLogDir)
	statusCli := status.NewClient(&cfg.GameServer)
	schedule := status.NewSchedule(cfg.GameServer.SchedulePath)
	spamGuard := moderation.NewSpamGuard(cfg.Moderation.SpamWindow(), cfg.Moderation.SpamThreshold)

	bot, err := discord.NewBot(cfg, log.Named("discord"), discord.UseCases{}, spamGuard, statusCli, schedule)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	adapter := bot.Adapter()

	bot.SetUseCases(discord.UseCases{
		CreateTicket:    ticketUC.NewCreateTicketUseCase(ticketRepo, adapter, adapter, log),
		ClaimTicket:     ticketUC.NewClaimTicketUseCase(adapter, adapter, log),
		ForwardTicket:   ticketUC.NewForwardTicketUseCase(adapter, adapter, log),
		RenameTicket:    ticketUC.NewRenameTicketUseCase(adapter, adapter, log),
		CloseTicket:     ticketUC.NewCloseTicketUseCase(ticketRepo, adapter, log),
		CloseWithReason: ticketUC.NewCloseWithReasonUseCase(ticketRepo, adapter, reasonStore, log),
		LookupTicket:    ticketUC.NewLookupTicketUseCase(ticketRepo),
		VerifyMember:    verificationUC.NewVerifyMemberUseCase(userRepo, adapter, log),
		CreateCheckout:  checkoutUC.NewCreateCheckoutUseCase(checkoutRepo, log),
		RemoveMember:    membershipUC.NewRemoveMemberUseCase(userRepo, log),
		SyncMembers:     membershipUC.NewSyncMembersUseCase(userRepo, log),
	})

	schedulerManager, err := scheduler.NewManager(log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	expireSweep := checkoutUC.NewExpireCheckoutsUseCase(checkoutRepo, adapter, log)
	if err := schedulerManager.RegisterCheckoutSweep(expireSweep); err != nil {
		return fmt.Errorf("failed to register checkout sweep: %w", err)
	}
	if cfg.Database.BackupPath != "" {
		err := schedulerManager.RegisterBackup(func(ctx context.Context) error {
			return database.Backup(db, cfg.Database.BackupPath)
		})
		if err != nil {
			return fmt.Errorf("failed to register backup job: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := bot.Start(ctx); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	schedulerManager.Start()

	var opsServer *opsHTTP.Server
	if cfg.Ops.Addr != "" {
		opsServer = opsHTTP.NewServer(cfg.Ops.Addr, db, bot, log.Named("ops"))
		goroutine.SafeGo(log, "ops-server", func() {
			if err := opsServer.Start(); err != nil {
				log.Errorw("ops endpoint failed", "error", err)
			}
		})
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if opsServer != nil {
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.Errorw("ops endpoint shutdown failed", "error", err)
		}
	}
	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}
	if err := bot.Stop(); err != nil {
		log.Errorw("bot shutdown failed", "error", err)
	}

	log.Infow("assistant exited gracefully")
	return nil
}
