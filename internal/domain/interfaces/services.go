package interfaces

import (
	"context"
	"time"

	domaintypes "timecapsule/internal/domain/types"
)

// ShareCombiner recovers a key from a client share and a server share.
type ShareCombiner interface {
	Split(secret []byte, count int) ([]domaintypes.Share, error)
	Combine(clientShare, serverShare domaintypes.Share) (domaintypes.Key, error)
	Verify(clientShare, serverShare domaintypes.Share) bool
}

// ProofGenerator creates and checks content-hash proofs.
type ProofGenerator interface {
	HashText(content string) domaintypes.Digest
	HashBuffer(buf []byte) domaintypes.Digest
	HashBase64(text string) (domaintypes.Digest, error)
	CreateProof(ciphertextBase64 string) (domaintypes.ProofRecord, error)
	Verify(ciphertextBase64 string, expected domaintypes.Digest) bool
	Check(ciphertextBase64 string, record domaintypes.ProofRecord) error
}

// LetterService seals letters and opens them once their unlock time passes.
type LetterService interface {
	Seal(
		ctx context.Context,
		plaintext []byte,
		unlockAt time.Time,
	) (domaintypes.Letter, domaintypes.Share, error)
	Open(
		ctx context.Context,
		id domaintypes.LetterID,
		clientShare domaintypes.Share,
	) ([]byte, error)
	List() ([]domaintypes.Letter, error)
}
