package types

import "time"

// Letter is a sealed letter as persisted by the application.
// Ciphertext is standard base64 of nonce||XChaCha20-Poly1305 output.
type Letter struct {
	ID         LetterID    `json:"id"`
	Ciphertext string      `json:"ciphertext"`
	Proof      ProofRecord `json:"proof"`
	UnlockAt   time.Time   `json:"unlock_at"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Unlocked reports whether the letter may be opened at now.
func (l Letter) Unlocked(now time.Time) bool { return !now.Before(l.UnlockAt) }

// CustodyRecord is the server share held back until UnlockAt.
type CustodyRecord struct {
	LetterID LetterID  `json:"letter_id"`
	Share    Share     `json:"share"`
	UnlockAt time.Time `json:"unlock_at"`
}
