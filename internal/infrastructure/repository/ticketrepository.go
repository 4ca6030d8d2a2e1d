package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := &models.TicketModel{
		UUID:      t.UUID(),
		UserID:    t.UserID(),
		Category:  t.Category().String(),
		ChannelID: t.ChannelID(),
		GuildID:   t.GuildID(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ticket.ErrAlreadyOpen
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("uuid = ?", uuid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return toDomainTicket(&model)
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return toDomainTicket(&model)
}

func (r *TicketRepository) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return toDomainTicket(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, uuid string) error {
	if err := r.db.WithContext(ctx).
		Where("uuid = ?", uuid).
		Delete(&models.TicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

func toDomainTicket(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.Reconstruct(
		model.UUID,
		model.UserID,
		ticket.Category(model.Category),
		model.ChannelID,
		model.GuildID,
	)
	if err != nil {
		return nil, fmt.Errorf("corrupt ticket row %s: %w", model.UUID, err)
	}
	return t, nil
}
