// Package usecases implements membership bookkeeping side effects.
package usecases

import (
	"context"

	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// RemoveMemberUseCase drops the verified-member row when someone leaves the
// guild. Removing a member who was never verified is a no-op.
type RemoveMemberUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRemoveMemberUseCase(userRepo user.Repository, log logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{userRepo: userRepo, logger: log}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, discordID string) error {
	exists, err := uc.userRepo.Exists(ctx, discordID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if err := uc.userRepo.Delete(ctx, discordID); err != nil {
		return err
	}

	uc.logger.Infow("departed member removed", "user_id", discordID)
	return nil
}
