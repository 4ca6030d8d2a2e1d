package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/shared/logger"
)

type mockUserRepo struct {
	SaveFunc   func(ctx context.Context, u *user.User) error
	ExistsFunc func(ctx context.Context, discordID string) (bool, error)
	DeleteFunc func(ctx context.Context, discordID string) error
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	return m.SaveFunc(ctx, u)
}

func (m *mockUserRepo) Exists(ctx context.Context, discordID string) (bool, error) {
	return m.ExistsFunc(ctx, discordID)
}

func (m *mockUserRepo) Delete(ctx context.Context, discordID string) error {
	return m.DeleteFunc(ctx, discordID)
}

type mockRolePort struct {
	GrantResidentFunc  func(ctx context.Context, userID string) error
	RevokeResidentFunc func(ctx context.Context, userID string) error
}

func (m *mockRolePort) GrantResident(ctx context.Context, userID string) error {
	return m.GrantResidentFunc(ctx, userID)
}

func (m *mockRolePort) RevokeResident(ctx context.Context, userID string) error {
	return m.RevokeResidentFunc(ctx, userID)
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newVerifyFixture() (*mockUserRepo, *mockRolePort, *VerifyMemberUseCase) {
	repo := &mockUserRepo{
		SaveFunc:   func(ctx context.Context, u *user.User) error { return nil },
		ExistsFunc: func(ctx context.Context, discordID string) (bool, error) { return false, nil },
		DeleteFunc: func(ctx context.Context, discordID string) error { return nil },
	}
	roles := &mockRolePort{
		GrantResidentFunc:  func(ctx context.Context, userID string) error { return nil },
		RevokeResidentFunc: func(ctx context.Context, userID string) error { return nil },
	}
	uc := NewVerifyMemberUseCase(repo, roles, logger.NewLogger())
	uc.now = func() time.Time { return testNow }
	return repo, roles, uc
}

func TestVerifyMember(t *testing.T) {
	repo, roles, uc := newVerifyFixture()

	var savedID, grantedID string
	repo.SaveFunc = func(ctx context.Context, u *user.User) error {
		savedID = u.DiscordID()
		return nil
	}
	roles.GrantResidentFunc = func(ctx context.Context, userID string) error {
		grantedID = userID
		return nil
	}

	err := uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "123",
		Username:         "Alice",
		Discriminator:    "0",
		AccountCreatedAt: testNow.Add(-30 * 24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "123", savedID)
	assert.Equal(t, "123", grantedID)
}

func TestVerifyMemberAlreadyVerified(t *testing.T) {
	repo, roles, uc := newVerifyFixture()
	repo.ExistsFunc = func(ctx context.Context, discordID string) (bool, error) { return true, nil }

	granted := false
	roles.GrantResidentFunc = func(ctx context.Context, userID string) error {
		granted = true
		return nil
	}

	err := uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "123",
		Username:         "Alice",
		AccountCreatedAt: testNow.Add(-30 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrAlreadyVerified)
	assert.False(t, granted)
}

func TestVerifyMemberAccountTooYoung(t *testing.T) {
	_, roles, uc := newVerifyFixture()

	granted := false
	roles.GrantResidentFunc = func(ctx context.Context, userID string) error {
		granted = true
		return nil
	}

	err := uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "123",
		Username:         "Alice",
		AccountCreatedAt: testNow.Add(-3 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrAccountTooYoung)
	assert.False(t, granted)
}

func TestVerifyMemberAgeBoundary(t *testing.T) {
	_, _, uc := newVerifyFixture()

	// Exactly seven days old passes.
	err := uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "123",
		Username:         "Alice",
		AccountCreatedAt: testNow.Add(-MinAccountAge),
	})
	assert.NoError(t, err)

	// One second younger does not.
	err = uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "456",
		Username:         "Bob",
		AccountCreatedAt: testNow.Add(-MinAccountAge + time.Second),
	})
	assert.ErrorIs(t, err, ErrAccountTooYoung)
}

func TestVerifyMemberRevokesRoleWhenStoreFails(t *testing.T) {
	repo, roles, uc := newVerifyFixture()
	repo.SaveFunc = func(ctx context.Context, u *user.User) error { return assert.AnError }

	var revokedID string
	roles.RevokeResidentFunc = func(ctx context.Context, userID string) error {
		revokedID = userID
		return nil
	}

	err := uc.Execute(context.Background(), VerifyMemberCommand{
		UserID:           "123",
		Username:         "Alice",
		AccountCreatedAt: testNow.Add(-30 * 24 * time.Hour),
	})

	assert.Error(t, err)
	assert.Equal(t, "123", revokedID, "grant must be compensated when the row insert fails")
}
