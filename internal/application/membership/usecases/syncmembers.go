package usecases

import (
	"context"

	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// MemberRecord is the minimal member snapshot the backfill needs.
type MemberRecord struct {
	ID            string
	Username      string
	Discriminator string
	IsBot         bool
}

// SyncMembersUseCase backfills user rows for every non-bot guild member.
// Used by the administrative sync command after enabling the assistant on an
// established guild.
type SyncMembersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSyncMembersUseCase(userRepo user.Repository, log logger.Interface) *SyncMembersUseCase {
	return &SyncMembersUseCase{userRepo: userRepo, logger: log}
}

// Execute upserts the given members and returns how many were stored.
func (uc *SyncMembersUseCase) Execute(ctx context.Context, members []MemberRecord) (int, error) {
	stored := 0
	for _, m := range members {
		if m.IsBot {
			continue
		}

		u, err := user.NewUser(m.ID, m.Username, m.Discriminator)
		if err != nil {
			uc.logger.Warnw("skipping member with invalid record", "user_id", m.ID, "error", err)
			continue
		}
		if err := uc.userRepo.Save(ctx, u); err != nil {
			return stored, err
		}
		stored++
	}

	uc.logger.Infow("member backfill completed", "stored", stored)
	return stored, nil
}
