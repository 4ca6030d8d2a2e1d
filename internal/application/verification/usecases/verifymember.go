// Package usecases implements the member verification workflow.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// MinAccountAge is the minimum platform account age before a member may verify.
const MinAccountAge = 7 * 24 * time.Hour

var (
	// ErrAlreadyVerified rejects a second verification attempt.
	ErrAlreadyVerified = errors.New("member is already verified")
	// ErrAccountTooYoung rejects accounts younger than MinAccountAge.
	ErrAccountTooYoung = errors.New("account is too young to verify")
)

// RolePort grants and revokes the resident role.
type RolePort interface {
	GrantResident(ctx context.Context, userID string) error
	RevokeResident(ctx context.Context, userID string) error
}

type VerifyMemberCommand struct {
	UserID           string
	Username         string
	Discriminator    string
	AccountCreatedAt time.Time
}

// VerifyMemberUseCase grants the resident role and records the member. If
// recording fails after the grant, the role is revoked best-effort so the
// platform state does not drift from the store.
type VerifyMemberUseCase struct {
	userRepo user.Repository
	roles    RolePort
	logger   logger.Interface
	now      func() time.Time
}

func NewVerifyMemberUseCase(userRepo user.Repository, roles RolePort, log logger.Interface) *VerifyMemberUseCase {
	return &VerifyMemberUseCase{
		userRepo: userRepo,
		roles:    roles,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *VerifyMemberUseCase) Execute(ctx context.Context, cmd VerifyMemberCommand) error {
	verified, err := uc.userRepo.Exists(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if verified {
		return ErrAlreadyVerified
	}

	if uc.now().Sub(cmd.AccountCreatedAt) < MinAccountAge {
		return ErrAccountTooYoung
	}

	newUser, err := user.NewUser(cmd.UserID, cmd.Username, cmd.Discriminator)
	if err != nil {
		return err
	}

	if err := uc.roles.GrantResident(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("failed to grant resident role: %w", err)
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if revokeErr := uc.roles.RevokeResident(ctx, cmd.UserID); revokeErr != nil {
			uc.logger.Errorw("failed to revoke role after store failure; member is verified but unrecorded",
				"user_id", cmd.UserID, "error", revokeErr)
		}
		return fmt.Errorf("failed to record verified member: %w", err)
	}

	uc.logger.Infow("member verified", "user_id", cmd.UserID, "username", cmd.Username)
	return nil
}
