package interfaces

import (
	"context"
	"time"

	domaintypes "timecapsule/internal/domain/types"
)

// ShareCustodian holds server shares and releases them after the unlock time.
// It is implemented locally (custody.Service) and remotely (relay.HTTPClient).
type ShareCustodian interface {
	Deposit(
		ctx context.Context,
		id domaintypes.LetterID,
		share domaintypes.Share,
		unlockAt time.Time,
	) error
	Release(ctx context.Context, id domaintypes.LetterID) (domaintypes.Share, error)
}
