package proof

import (
	"fmt"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
)

// Service implements domain.ProofGenerator. The only retained value is the
// clock; it is safe for concurrent use.
type Service struct {
	clock domain.Clock
}

// New returns a proof service stamping records with clock. A nil clock
// selects domain.SystemClock.
func New(clock domain.Clock) *Service {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &Service{clock: clock}
}

// HashText returns the digest of the UTF-8 bytes of content.
func (s *Service) HashText(content string) domain.Digest {
	return s.HashBuffer([]byte(content))
}

// HashBuffer returns the digest of buf.
func (s *Service) HashBuffer(buf []byte) domain.Digest {
	return domain.Digest(crypto.SHA256Hex(buf))
}

// HashBase64 decodes standard base64 text and returns the digest of the bytes.
func (s *Service) HashBase64(text string) (domain.Digest, error) {
	b, err := crypto.DecodeB64(text)
	if err != nil {
		return "", err
	}
	return s.HashBuffer(b), nil
}

// CreateProof hashes the ciphertext and stamps the record with the current
// time in milliseconds.
func (s *Service) CreateProof(ciphertextBase64 string) (domain.ProofRecord, error) {
	hash, err := s.HashBase64(ciphertextBase64)
	if err != nil {
		return domain.ProofRecord{}, err
	}
	return domain.ProofRecord{
		Hash:      hash,
		Timestamp: s.clock.Now().UnixMilli(),
		Provider:  domain.ProviderLocal,
	}, nil
}

// Verify reports whether the ciphertext hashes to expected. The comparison
// is exact and case-sensitive; callers normalise case themselves.
func (s *Service) Verify(ciphertextBase64 string, expected domain.Digest) bool {
	hash, err := s.HashBase64(ciphertextBase64)
	if err != nil {
		return false
	}
	return hash == expected
}

// Check is Verify without collapsing errors.
func (s *Service) Check(ciphertextBase64 string, record domain.ProofRecord) error {
	if !record.Provider.Valid() {
		return fmt.Errorf("unknown proof provider %q", record.Provider)
	}
	hash, err := s.HashBase64(ciphertextBase64)
	if err != nil {
		return err
	}
	if hash != record.Hash {
		return domain.ErrIntegrity
	}
	return nil
}

// Compile-time assertion that Service implements domain.ProofGenerator.
var _ domain.ProofGenerator = (*Service)(nil)
