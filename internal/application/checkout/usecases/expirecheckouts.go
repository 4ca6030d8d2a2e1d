package usecases

import (
	"context"
	"time"

	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/shared/logger"
)

// NotifyPort delivers the expiry notice. Failures are swallowed; the notice
// is best-effort.
type NotifyPort interface {
	DirectMessage(ctx context.Context, userID, content string) error
}

// ExpireCheckoutsUseCase removes checkouts whose end date has passed and
// notifies the affected members. Implements the scheduler's BatchJob.
type ExpireCheckoutsUseCase struct {
	checkoutRepo checkout.Repository
	notifier     NotifyPort
	logger       logger.Interface
	now          func() time.Time
}

func NewExpireCheckoutsUseCase(
	checkoutRepo checkout.Repository,
	notifier NotifyPort,
	log logger.Interface,
) *ExpireCheckoutsUseCase {
	return &ExpireCheckoutsUseCase{
		checkoutRepo: checkoutRepo,
		notifier:     notifier,
		logger:       log,
		now:          time.Now,
	}
}

// Execute returns the number of checkouts expired this sweep.
func (uc *ExpireCheckoutsUseCase) Execute(ctx context.Context) (int, error) {
	checkouts, err := uc.checkoutRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.now()
	expired := 0
	for _, c := range checkouts {
		if !c.Expired(now) {
			continue
		}

		if err := uc.checkoutRepo.Delete(ctx, c.UserID()); err != nil {
			uc.logger.Errorw("failed to remove expired checkout", "user_id", c.UserID(), "error", err)
			continue
		}
		expired++

		if err := uc.notifier.DirectMessage(ctx, c.UserID(),
			"Your leave of absence has ended and was removed."); err != nil {
			uc.logger.Debugw("expiry notice not delivered", "user_id", c.UserID(), "error", err)
		}
	}
	return expired, nil
}
