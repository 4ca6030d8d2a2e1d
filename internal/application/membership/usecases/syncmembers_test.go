package usecases

import (
	"context"
	"testing"

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

func TestSyncMembersSkipsBots(t *testing.T) {
	var saved []string
	repo := &mockUserRepo{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = append(saved, u.DiscordID())
			return nil
		},
	}

	uc := NewSyncMembersUseCase(repo, logger.NewLogger())
	stored, err := uc.Execute(context.Background(), []MemberRecord{
		{ID: "1", Username: "Alice"},
		{ID: "2", Username: "HelperBot", IsBot: true},
		{ID: "3", Username: "Bob", Discriminator: "1234"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, stored)
	assert.Equal(t, []string{"1", "3"}, saved)
}

func TestSyncMembersSkipsInvalidRecords(t *testing.T) {
	repo := &mockUserRepo{
		SaveFunc: func(ctx context.Context, u *user.User) error { return nil },
	}

	uc := NewSyncMembersUseCase(repo, logger.NewLogger())
	stored, err := uc.Execute(context.Background(), []MemberRecord{
		{ID: "", Username: "Ghost"},
		{ID: "1", Username: "Alice"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, stored)
}

func TestRemoveMember(t *testing.T) {
	var deleted string
	repo := &mockUserRepo{
		ExistsFunc: func(ctx context.Context, discordID string) (bool, error) { return true, nil },
		DeleteFunc: func(ctx context.Context, discordID string) error {
			deleted = discordID
			return nil
		},
	}

	uc := NewRemoveMemberUseCase(repo, logger.NewLogger())
	require.NoError(t, uc.Execute(context.Background(), "123"))
	assert.Equal(t, "123", deleted)
}

func TestRemoveMemberNeverVerifiedIsNoOp(t *testing.T) {
	repo := &mockUserRepo{
		ExistsFunc: func(ctx context.Context, discordID string) (bool, error) { return false, nil },
		DeleteFunc: func(ctx context.Context, discordID string) error {
			t.Fatal("delete must not be called for an unknown member")
			return nil
		},
	}

	uc := NewRemoveMemberUseCase(repo, logger.NewLogger())
	assert.NoError(t, uc.Execute(context.Background(), "123"))
}
