package usecases

import (
	"context"

	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockTicketRepo struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	FindByUUIDFunc      func(ctx context.Context, uuid string) (*ticket.Ticket, error)
	FindByUserIDFunc    func(ctx context.Context, userID string) (*ticket.Ticket, error)
	FindByChannelIDFunc func(ctx context.Context, channelID string) (*ticket.Ticket, error)
	DeleteFunc          func(ctx context.Context, uuid string) error
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	return m.SaveFunc(ctx, t)
}

func (m *mockTicketRepo) FindByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	return m.FindByUUIDFunc(ctx, uuid)
}

func (m *mockTicketRepo) FindByUserID(ctx context.Context, userID string) (*ticket.Ticket, error) {
	return m.FindByUserIDFunc(ctx, userID)
}

func (m *mockTicketRepo) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	return m.FindByChannelIDFunc(ctx, channelID)
}

func (m *mockTicketRepo) Delete(ctx context.Context, uuid string) error {
	return m.DeleteFunc(ctx, uuid)
}

type mockGuildPort struct {
	EnsureCategoryFunc        func(ctx context.Context, name string) (string, error)
	CreateTicketChannelFunc   func(ctx context.Context, categoryID, name, topic, ownerID string) (string, error)
	DeleteChannelFunc         func(ctx context.Context, channelID string) error
	RenameChannelFunc         func(ctx context.Context, channelID, name string) error
	GrantMemberAccessFunc     func(ctx context.Context, channelID, userID string) error
	RestrictToClaimantFunc    func(ctx context.Context, channelID, claimantID string) error
	DeleteCategoryIfEmptyFunc func(ctx context.Context, categoryID string) error
	CategoryOfFunc            func(ctx context.Context, channelID string) (string, error)
}

func (m *mockGuildPort) EnsureCategory(ctx context.Context, name string) (string, error) {
	return m.EnsureCategoryFunc(ctx, name)
}

func (m *mockGuildPort) CreateTicketChannel(ctx context.Context, categoryID, name, topic, ownerID string) (string, error) {
	return m.CreateTicketChannelFunc(ctx, categoryID, name, topic, ownerID)
}

func (m *mockGuildPort) DeleteChannel(ctx context.Context, channelID string) error {
	return m.DeleteChannelFunc(ctx, channelID)
}

func (m *mockGuildPort) RenameChannel(ctx context.Context, channelID, name string) error {
	return m.RenameChannelFunc(ctx, channelID, name)
}

func (m *mockGuildPort) GrantMemberAccess(ctx context.Context, channelID, userID string) error {
	return m.GrantMemberAccessFunc(ctx, channelID, userID)
}

func (m *mockGuildPort) RestrictToClaimant(ctx context.Context, channelID, claimantID string) error {
	return m.RestrictToClaimantFunc(ctx, channelID, claimantID)
}

func (m *mockGuildPort) DeleteCategoryIfEmpty(ctx context.Context, categoryID string) error {
	return m.DeleteCategoryIfEmptyFunc(ctx, categoryID)
}

func (m *mockGuildPort) CategoryOf(ctx context.Context, channelID string) (string, error) {
	return m.CategoryOfFunc(ctx, channelID)
}

type mockMemberPort struct {
	MemberFunc func(ctx context.Context, userID string) (*Member, error)
}

func (m *mockMemberPort) Member(ctx context.Context, userID string) (*Member, error) {
	return m.MemberFunc(ctx, userID)
}

type mockReasonLog struct {
	AppendFunc func(userID, ticketShortID, category, closedBy, reason string) error
}

func (m *mockReasonLog) Append(userID, ticketShortID, category, closedBy, reason string) error {
	return m.AppendFunc(userID, ticketShortID, category, closedBy, reason)
}
