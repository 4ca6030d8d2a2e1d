package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/infrastructure/persistence/models"
)

type CheckoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// Save upserts the leave-of-absence row; a member re-submitting the form
// replaces their previous record.
func (r *CheckoutRepository) Save(ctx context.Context, c *checkout.Checkout) error {
	model := &models.CheckoutModel{
		UserID:   c.UserID(),
		Reason:   c.Reason(),
		Duration: c.Duration(),
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"reason", "duration"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to save checkout: %w", err)
	}
	return nil
}

// FindAll returns every stored checkout; expiry filtering happens in the
// sweep because the duration column holds a verbatim dd/mm/yyyy string.
func (r *CheckoutRepository) FindAll(ctx context.Context) ([]*checkout.Checkout, error) {
	var rows []models.CheckoutModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkouts: %w", err)
	}

	checkouts := make([]*checkout.Checkout, 0, len(rows))
	for _, row := range rows {
		checkouts = append(checkouts, checkout.Reconstruct(row.UserID, row.Reason, row.Duration))
	}
	return checkouts, nil
}

func (r *CheckoutRepository) Delete(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CheckoutModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete checkout: %w", err)
	}
	return nil
}
