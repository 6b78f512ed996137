package custody

import (
	"context"
	"fmt"
	"time"

	"timecapsule/internal/domain"
)

// Service implements domain.ShareCustodian on top of a local share store.
type Service struct {
	store      domain.ShareStore
	passphrase string
	clock      domain.Clock
}

// New returns a custody service. A nil clock selects the wall clock.
func New(store domain.ShareStore, passphrase string, clock domain.Clock) *Service {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Service{store: store, passphrase: passphrase, clock: clock}
}

// Deposit stores the server share for id. A second deposit for the same id
// is rejected with domain.ErrShareExists.
func (s *Service) Deposit(
	ctx context.Context,
	id domain.LetterID,
	share domain.Share,
	unlockAt time.Time,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if share == "" {
		return fmt.Errorf("empty server share for letter %s", id)
	}
	_, ok, err := s.store.LoadCustodyRecord(s.passphrase, id)
	if err != nil {
		return err
	}
	if ok {
		return domain.ErrShareExists
	}
	return s.store.SaveCustodyRecord(s.passphrase, domain.CustodyRecord{
		LetterID: id,
		Share:    share,
		UnlockAt: unlockAt.UTC(),
	})
}

// Release returns the server share for id once its unlock time has passed.
func (s *Service) Release(ctx context.Context, id domain.LetterID) (domain.Share, error) {
	record, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if now := s.clock.Now(); now.Before(record.UnlockAt) {
		return "", &SealedError{UnlockAt: record.UnlockAt, Remaining: record.UnlockAt.Sub(now)}
	}
	return record.Share, nil
}

func (s *Service) lookup(ctx context.Context, id domain.LetterID) (domain.CustodyRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustodyRecord{}, err
	}
	record, ok, err := s.store.LoadCustodyRecord(s.passphrase, id)
	if err != nil {
		return domain.CustodyRecord{}, err
	}
	if !ok {
		return domain.CustodyRecord{}, domain.ErrLetterNotFound
	}
	return record, nil
}

// SealedError carries the unlock time of a share that is not yet releasable
// and how long remains by the custodian's clock.
// errors.Is(err, domain.ErrStillSealed) holds.
type SealedError struct {
	UnlockAt  time.Time
	Remaining time.Duration
}

func (e *SealedError) Error() string {
	return fmt.Sprintf("%s until %s", domain.ErrStillSealed, e.UnlockAt.Format(time.RFC3339))
}

// Is matches domain.ErrStillSealed.
func (e *SealedError) Is(target error) bool { return target == domain.ErrStillSealed }

// Compile-time assertion that Service implements domain.ShareCustodian.
var _ domain.ShareCustodian = (*Service)(nil)
