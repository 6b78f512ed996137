package relay

import (
	"time"

	"timecapsule/internal/domain"
)

type depositRequest struct {
	LetterID domain.LetterID `json:"letter_id"`
	Share    domain.Share    `json:"share"`
	UnlockAt time.Time       `json:"unlock_at"`
}

type releaseResponse struct {
	Share domain.Share `json:"share"`
}
