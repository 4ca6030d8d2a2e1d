package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haven-rp/warden/internal/domain/checkout"
	"github.com/haven-rp/warden/internal/shared/logger"
)

type mockCheckoutRepo struct {
	SaveFunc    func(ctx context.Context, c *checkout.Checkout) error
	FindAllFunc func(ctx context.Context) ([]*checkout.Checkout, error)
	DeleteFunc  func(ctx context.Context, userID string) error
}

func (m *mockCheckoutRepo) Save(ctx context.Context, c *checkout.Checkout) error {
	return m.SaveFunc(ctx, c)
}

func (m *mockCheckoutRepo) FindAll(ctx context.Context) ([]*checkout.Checkout, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockCheckoutRepo) Delete(ctx context.Context, userID string) error {
	return m.DeleteFunc(ctx, userID)
}

type mockNotifier struct {
	DirectMessageFunc func(ctx context.Context, userID, content string) error
}

func (m *mockNotifier) DirectMessage(ctx context.Context, userID, content string) error {
	return m.DirectMessageFunc(ctx, userID, content)
}

var sweepNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestExpireCheckouts(t *testing.T) {
	rows := []*checkout.Checkout{
		checkout.Reconstruct("expired-1", "trip", "01/03/2026"),
		checkout.Reconstruct("active-1", "study", "20/03/2026"),
		checkout.Reconstruct("expired-2", "work", "15/03/2026"),
	}

	var deleted, notified []string
	repo := &mockCheckoutRepo{
		FindAllFunc: func(ctx context.Context) ([]*checkout.Checkout, error) { return rows, nil },
		DeleteFunc: func(ctx context.Context, userID string) error {
			deleted = append(deleted, userID)
			return nil
		},
	}
	notifier := &mockNotifier{
		DirectMessageFunc: func(ctx context.Context, userID, content string) error {
			notified = append(notified, userID)
			return nil
		},
	}

	uc := NewExpireCheckoutsUseCase(repo, notifier, logger.NewLogger())
	uc.now = func() time.Time { return sweepNow }

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.ElementsMatch(t, []string{"expired-1", "expired-2"}, deleted)
	assert.ElementsMatch(t, []string{"expired-1", "expired-2"}, notified)
}

func TestExpireCheckoutsContinuesAfterDeleteFailure(t *testing.T) {
	rows := []*checkout.Checkout{
		checkout.Reconstruct("failing", "trip", "01/03/2026"),
		checkout.Reconstruct("ok", "work", "01/03/2026"),
	}

	repo := &mockCheckoutRepo{
		FindAllFunc: func(ctx context.Context) ([]*checkout.Checkout, error) { return rows, nil },
		DeleteFunc: func(ctx context.Context, userID string) error {
			if userID == "failing" {
				return assert.AnError
			}
			return nil
		},
	}
	notifier := &mockNotifier{
		DirectMessageFunc: func(ctx context.Context, userID, content string) error { return nil },
	}

	uc := NewExpireCheckoutsUseCase(repo, notifier, logger.NewLogger())
	uc.now = func() time.Time { return sweepNow }

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpireCheckoutsSwallowsNotifyFailure(t *testing.T) {
	rows := []*checkout.Checkout{
		checkout.Reconstruct("expired-1", "trip", "01/03/2026"),
	}

	repo := &mockCheckoutRepo{
		FindAllFunc: func(ctx context.Context) ([]*checkout.Checkout, error) { return rows, nil },
		DeleteFunc:  func(ctx context.Context, userID string) error { return nil },
	}
	notifier := &mockNotifier{
		DirectMessageFunc: func(ctx context.Context, userID, content string) error { return assert.AnError },
	}

	uc := NewExpireCheckoutsUseCase(repo, notifier, logger.NewLogger())
	uc.now = func() time.Time { return sweepNow }

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateCheckout(t *testing.T) {
	var saved *checkout.Checkout
	repo := &mockCheckoutRepo{
		SaveFunc: func(ctx context.Context, c *checkout.Checkout) error {
			saved = c
			return nil
		},
	}

	uc := NewCreateCheckoutUseCase(repo, logger.NewLogger())
	uc.now = func() time.Time { return sweepNow }

	err := uc.Execute(context.Background(), CreateCheckoutCommand{
		UserID:   "123",
		Reason:   "vacation",
		Duration: "20/03/2026",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "123", saved.UserID())
	assert.Equal(t, "20/03/2026", saved.Duration())
}

func TestCreateCheckoutRejectsPastDate(t *testing.T) {
	repo := &mockCheckoutRepo{
		SaveFunc: func(ctx context.Context, c *checkout.Checkout) error {
			t.Fatal("nothing may be saved for an invalid date")
			return nil
		},
	}

	uc := NewCreateCheckoutUseCase(repo, logger.NewLogger())
	uc.now = func() time.Time { return sweepNow }

	err := uc.Execute(context.Background(), CreateCheckoutCommand{
		UserID:   "123",
		Reason:   "vacation",
		Duration: "01/01/2026",
	})

	assert.ErrorIs(t, err, checkout.ErrDateNotFuture)
}
