package letter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
)

// shareCount is the number of shares a letter key is split into: one for
// the client link and one for the custodian.
const shareCount = 2

// Service implements domain.LetterService.
type Service struct {
	letters   domain.LetterStore
	custodian domain.ShareCustodian
	shares    domain.ShareCombiner
	proofs    domain.ProofGenerator
	clock     domain.Clock
}

// New constructs a letter Service. A nil clock selects the wall clock.
func New(
	letters domain.LetterStore,
	custodian domain.ShareCustodian,
	shares domain.ShareCombiner,
	proofs domain.ProofGenerator,
	clock domain.Clock,
) *Service {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Service{
		letters:   letters,
		custodian: custodian,
		shares:    shares,
		proofs:    proofs,
		clock:     clock,
	}
}

// Seal encrypts plaintext, deposits the server share and stores the letter.
// It returns the stored letter and the client share.
func (s *Service) Seal(
	ctx context.Context,
	plaintext []byte,
	unlockAt time.Time,
) (domain.Letter, domain.Share, error) {
	if len(plaintext) == 0 {
		return domain.Letter{}, "", domain.ErrEmptyLetter
	}
	now := s.clock.Now()
	if !unlockAt.After(now) {
		return domain.Letter{}, "", domain.ErrUnlockInPast
	}

	key, err := crypto.NewKey()
	if err != nil {
		return domain.Letter{}, "", err
	}
	defer crypto.Wipe(key)

	sealed, err := crypto.Seal(key, plaintext)
	if err != nil {
		return domain.Letter{}, "", fmt.Errorf("encrypting letter: %w", err)
	}
	ciphertext := crypto.B64(sealed)

	record, err := s.proofs.CreateProof(ciphertext)
	if err != nil {
		return domain.Letter{}, "", fmt.Errorf("creating proof: %w", err)
	}

	shares, err := s.shares.Split(key, shareCount)
	if err != nil {
		return domain.Letter{}, "", err
	}
	clientShare, serverShare := shares[0], shares[1]

	letter := domain.Letter{
		ID:         uuid.New(),
		Ciphertext: ciphertext,
		Proof:      record,
		UnlockAt:   unlockAt.UTC(),
		CreatedAt:  now.UTC(),
	}

	// Deposit first: every stored letter has a server share in custody.
	if err := s.custodian.Deposit(ctx, letter.ID, serverShare, letter.UnlockAt); err != nil {
		return domain.Letter{}, "", fmt.Errorf("depositing server share: %w", err)
	}
	if err := s.letters.SaveLetter(letter); err != nil {
		return domain.Letter{}, "", err
	}
	return letter, clientShare, nil
}

// Open recovers the plaintext of letter id using the client share.
func (s *Service) Open(
	ctx context.Context,
	id domain.LetterID,
	clientShare domain.Share,
) ([]byte, error) {
	letter, ok, err := s.letters.LoadLetter(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrLetterNotFound
	}

	serverShare, err := s.custodian.Release(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.proofs.Check(letter.Ciphertext, letter.Proof); err != nil {
		if errors.Is(err, domain.ErrIntegrity) {
			return nil, err
		}
		return nil, fmt.Errorf("checking proof: %w", err)
	}

	key, err := s.shares.Combine(clientShare, serverShare)
	if err != nil {
		return nil, err
	}
	rawKey, err := crypto.DecodeURL(key.String())
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(rawKey)

	sealed, err := crypto.DecodeB64(letter.Ciphertext)
	if err != nil {
		return nil, err
	}
	plaintext, err := crypto.Open(rawKey, sealed)
	if err != nil {
		return nil, domain.ErrDecrypt
	}
	return plaintext, nil
}

// List returns every stored letter ordered by unlock time.
func (s *Service) List() ([]domain.Letter, error) {
	return s.letters.ListLetters()
}

// Compile-time assertion that Service implements domain.LetterService.
var _ domain.LetterService = (*Service)(nil)
