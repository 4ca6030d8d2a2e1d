// Package usecases implements the leave-of-absence workflow.
package usecases

import (
	"context"
	"time"

	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/shared/logger"
)

type CreateCheckoutCommand struct {
	UserID   string
	Reason   string
	Duration string
}

// CreateCheckoutUseCase validates and records a leave-of-absence. Date
// validation lives on the domain constructor; the duration string is
// persisted verbatim.
type CreateCheckoutUseCase struct {
	checkoutRepo checkout.Repository
	logger       logger.Interface
	now          func() time.Time
}

func NewCreateCheckoutUseCase(checkoutRepo checkout.Repository, log logger.Interface) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		checkoutRepo: checkoutRepo,
		logger:       log,
		now:          time.Now,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) error {
	newCheckout, err := checkout.NewCheckout(cmd.UserID, cmd.Reason, cmd.Duration, uc.now())
	if err != nil {
		return err
	}

	if err := uc.checkoutRepo.Save(ctx, newCheckout); err != nil {
		return err
	}

	uc.logger.Infow("checkout recorded",
		"user_id", cmd.UserID,
		"until", cmd.Duration,
	)
	return nil
}
