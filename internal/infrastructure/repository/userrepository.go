package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/infrastructure/persistence/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save upserts the member row. Re-verification after a manual row wipe should
// not fail on the primary key.
func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := &models.UserModel{
		DiscordID:     u.DiscordID(),
		Username:      u.Username(),
		Discriminator: u.Discriminator(),
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "discriminator"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, discordID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("discord_id = ?", discordID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, discordID string) error {
	if err := r.db.WithContext(ctx).
		Where("discord_id = ?", discordID).
		Delete(&models.UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
