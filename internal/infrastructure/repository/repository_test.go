package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/domain/ticket"
	"github.com/haven-rp/warden/internal/domain/user"
	"github.com/haven-rp/warden/internal/infrastructure/migrations"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps the schema visible across pooled
	// connections while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, migrations.Up(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestTicketRepositoryRoundTrip(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := ticket.NewTicket("123", ticket.CategoryGeneral, "channel-1", "guild-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, created))

	byUUID, err := repo.FindByUUID(ctx, created.UUID())
	require.NoError(t, err)
	assert.Equal(t, created.UserID(), byUUID.UserID())
	assert.Equal(t, created.Category(), byUUID.Category())

	byUser, err := repo.FindByUserID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, created.UUID(), byUser.UUID())

	byChannel, err := repo.FindByChannelID(ctx, "channel-1")
	require.NoError(t, err)
	assert.Equal(t, created.UUID(), byChannel.UUID())
}

func TestTicketRepositoryUniqueUser(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := ticket.NewTicket("123", ticket.CategoryGeneral, "channel-1", "guild-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := ticket.NewTicket("123", ticket.CategoryOther, "channel-2", "guild-1")
	require.NoError(t, err)

	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ticket.ErrAlreadyOpen)
}

func TestTicketRepositoryDelete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := ticket.NewTicket("123", ticket.CategoryGeneral, "channel-1", "guild-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, created))

	require.NoError(t, repo.Delete(ctx, created.UUID()))

	_, err = repo.FindByUUID(ctx, created.UUID())
	assert.ErrorIs(t, err, ticket.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, created.UUID()))

	// The user can open a new ticket after the close.
	reopened, err := ticket.NewTicket("123", ticket.CategoryTechnical, "channel-3", "guild-1")
	require.NoError(t, err)
	assert.NoError(t, repo.Save(ctx, reopened))
}

func TestTicketRepositoryNotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByUserID(ctx, "missing")
	assert.ErrorIs(t, err, ticket.ErrNotFound)

	_, err = repo.FindByChannelID(ctx, "missing")
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "123")
	require.NoError(t, err)
	assert.False(t, exists)

	u, err := user.NewUser("123", "Alice", "0")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	exists, err = repo.Exists(ctx, "123")
	require.NoError(t, err)
	assert.True(t, exists)

	// Saving again updates instead of failing on the primary key.
	renamed, err := user.NewUser("123", "AliceRenamed", "0")
	require.NoError(t, err)
	assert.NoError(t, repo.Save(ctx, renamed))

	require.NoError(t, repo.Delete(ctx, "123"))
	exists, err = repo.Exists(ctx, "123")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing row is a no-op.
	assert.NoError(t, repo.Delete(ctx, "123"))
}

func TestCheckoutRepository(t *testing.T) {
	repo := NewCheckoutRepository(setupTestDB(t))
	ctx := context.Background()

	first := checkout.Reconstruct("123", "vacation", "20/03/2026")
	require.NoError(t, repo.Save(ctx, first))

	// Re-submitting replaces the previous record.
	replaced := checkout.Reconstruct("123", "longer vacation", "25/03/2026")
	require.NoError(t, repo.Save(ctx, replaced))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "longer vacation", all[0].Reason())
	assert.Equal(t, "25/03/2026", all[0].Duration())

	require.NoError(t, repo.Delete(ctx, "123"))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
