package custody_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecapsule/internal/domain"
	"timecapsule/internal/services/custody"
	"timecapsule/internal/store"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestDepositRelease(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := custody.New(store.NewShareFileStore(t.TempDir()), "pass", clock)

	id := uuid.New()
	unlockAt := clock.now.Add(24 * time.Hour)
	require.NoError(t, svc.Deposit(ctx, id, "server-share", unlockAt))

	_, err := svc.Release(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStillSealed))

	var sealed *custody.SealedError
	require.True(t, errors.As(err, &sealed))
	assert.True(t, unlockAt.Equal(sealed.UnlockAt))
	assert.Equal(t, 24*time.Hour, sealed.Remaining)

	clock.now = unlockAt
	share, err := svc.Release(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Share("server-share"), share)
}

func TestDeposit_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := custody.New(store.NewShareFileStore(t.TempDir()), "pass", nil)

	id := uuid.New()
	require.NoError(t, svc.Deposit(ctx, id, "one", time.Now().Add(time.Hour)))
	assert.ErrorIs(t, svc.Deposit(ctx, id, "two", time.Now().Add(time.Hour)), domain.ErrShareExists)
}

func TestDeposit_EmptyShare(t *testing.T) {
	svc := custody.New(store.NewShareFileStore(t.TempDir()), "pass", nil)
	assert.Error(t, svc.Deposit(context.Background(), uuid.New(), "", time.Now()))
}

func TestRelease_Unknown(t *testing.T) {
	svc := custody.New(store.NewShareFileStore(t.TempDir()), "pass", nil)
	_, err := svc.Release(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrLetterNotFound)
}

func TestRelease_CancelledContext(t *testing.T) {
	svc := custody.New(store.NewShareFileStore(t.TempDir()), "pass", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Release(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
