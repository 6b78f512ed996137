package letter_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
	"timecapsule/internal/services/custody"
	"timecapsule/internal/services/letter"
	"timecapsule/internal/services/proof"
	"timecapsule/internal/services/sharing"
	"timecapsule/internal/store"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

type fixture struct {
	svc     *letter.Service
	letters *store.LetterFileStore
	clock   *stepClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	home := t.TempDir()
	clock := &stepClock{now: time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)}
	letters := store.NewLetterFileStore(home)
	custodian := custody.New(store.NewShareFileStore(home), "custodian pass", clock)
	svc := letter.New(letters, custodian, sharing.New(nil), proof.New(clock), clock)
	return fixture{svc: svc, letters: letters, clock: clock}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	unlockAt := f.clock.now.Add(365 * 24 * time.Hour)

	l, clientShare, err := f.svc.Seal(ctx, []byte("hello from 2030"), unlockAt)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, l.ID)
	assert.NotEmpty(t, clientShare)
	assert.Equal(t, domain.ProviderLocal, l.Proof.Provider)
	assert.Equal(t, f.clock.now.UnixMilli(), l.Proof.Timestamp)
	assert.True(t, proof.New(nil).Verify(l.Ciphertext, l.Proof.Hash))

	_, err = f.svc.Open(ctx, l.ID, clientShare)
	assert.ErrorIs(t, err, domain.ErrStillSealed)

	f.clock.now = unlockAt
	pt, err := f.svc.Open(ctx, l.ID, clientShare)
	require.NoError(t, err)
	assert.Equal(t, "hello from 2030", string(pt))
}

func TestSeal_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, _, err := f.svc.Seal(ctx, nil, f.clock.now.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrEmptyLetter)

	_, _, err = f.svc.Seal(ctx, []byte("x"), f.clock.now)
	assert.ErrorIs(t, err, domain.ErrUnlockInPast)

	list, err := f.svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_TamperedCiphertext(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	l, clientShare, err := f.svc.Seal(ctx, []byte("original"), f.clock.now.Add(time.Hour))
	require.NoError(t, err)

	sealed, err := crypto.DecodeB64(l.Ciphertext)
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0x01
	l.Ciphertext = crypto.B64(sealed)
	require.NoError(t, f.letters.SaveLetter(l))

	f.clock.now = l.UnlockAt
	_, err = f.svc.Open(ctx, l.ID, clientShare)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestOpen_WrongClientShare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	unlockAt := f.clock.now.Add(time.Hour)

	a, _, err := f.svc.Seal(ctx, []byte("letter a"), unlockAt)
	require.NoError(t, err)
	_, shareB, err := f.svc.Seal(ctx, []byte("letter b"), unlockAt)
	require.NoError(t, err)

	f.clock.now = unlockAt
	_, err = f.svc.Open(ctx, a.ID, shareB)
	assert.ErrorIs(t, err, domain.ErrCombine)

	_, err = f.svc.Open(ctx, a.ID, "***")
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestOpen_UnknownLetter(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Open(context.Background(), uuid.New(), "abc")
	assert.ErrorIs(t, err, domain.ErrLetterNotFound)
}

func TestList_OrderedByUnlock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	later, _, err := f.svc.Seal(ctx, []byte("later"), f.clock.now.Add(48*time.Hour))
	require.NoError(t, err)
	sooner, _, err := f.svc.Seal(ctx, []byte("sooner"), f.clock.now.Add(time.Hour))
	require.NoError(t, err)

	list, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, sooner.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
}
