package sharing

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"timecapsule/internal/crypto"
	"timecapsule/internal/domain"
)

// Threshold is the number of shares needed to recover a key.
const Threshold = 2

// checksumSize is the length of the secret digest split along with every
// secret. Shares from different splits recover a secret whose digest does
// not match.
const checksumSize = 8

var errSplitMismatch = errors.New("recovered secret fails its checksum")

// Service implements domain.ShareCombiner over a domain.SecretScheme.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	scheme domain.SecretScheme
}

// New returns a sharing service backed by scheme. A nil scheme selects
// crypto.Shamir.
func New(scheme domain.SecretScheme) *Service {
	if scheme == nil {
		scheme = crypto.Shamir{}
	}
	return &Service{scheme: scheme}
}

// Decode turns share text into the raw share bytes.
func (s *Service) Decode(share domain.Share) ([]byte, error) {
	return crypto.DecodeURL(share.String())
}

// Encode renders raw bytes as share text.
func (s *Service) Encode(b []byte) domain.Share {
	return domain.Share(crypto.EncodeURL(b))
}

// Split divides secret into count shares, any Threshold of which recover it.
// A checksum of secret is split with it so Combine can tell shares of
// different splits apart.
func (s *Service) Split(secret []byte, count int) ([]domain.Share, error) {
	if count < Threshold {
		return nil, fmt.Errorf("need at least %d shares, got %d", Threshold, count)
	}
	if len(secret) == 0 {
		return nil, errors.New("cannot split an empty secret")
	}
	tagged := make([]byte, 0, len(secret)+checksumSize)
	tagged = append(tagged, secret...)
	tagged = append(tagged, crypto.Checksum(secret, checksumSize)...)
	defer crypto.Wipe(tagged)

	parts, err := s.scheme.Split(tagged, count, Threshold)
	if err != nil {
		return nil, fmt.Errorf("splitting secret: %w", err)
	}
	out := make([]domain.Share, len(parts))
	for i, p := range parts {
		out[i] = s.Encode(p)
		crypto.Wipe(p)
	}
	return out, nil
}

// Combine recovers the key from the client and server shares.
//
// Steps:
//  1. Decode both shares from base64url.
//  2. Hand them to the scheme, client share first.
//  3. Check and strip the trailing checksum.
//  4. Encode the recovered secret as base64url.
func (s *Service) Combine(clientShare, serverShare domain.Share) (domain.Key, error) {
	client, err := s.Decode(clientShare)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(client)

	server, err := s.Decode(serverShare)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(server)

	tagged, err := s.scheme.Combine([][]byte{client, server})
	if err != nil {
		return "", &domain.CombineError{Err: err}
	}
	defer crypto.Wipe(tagged)

	if len(tagged) <= checksumSize {
		return "", &domain.CombineError{Err: errSplitMismatch}
	}
	secret, sum := tagged[:len(tagged)-checksumSize], tagged[len(tagged)-checksumSize:]
	if subtle.ConstantTimeCompare(sum, crypto.Checksum(secret, checksumSize)) != 1 {
		return "", &domain.CombineError{Err: errSplitMismatch}
	}
	return domain.Key(crypto.EncodeURL(secret)), nil
}

// Verify reports whether Combine succeeds for the two shares. It says
// nothing about whether the recovered key opens any particular ciphertext.
func (s *Service) Verify(clientShare, serverShare domain.Share) bool {
	_, err := s.Combine(clientShare, serverShare)
	return err == nil
}

// Compile-time assertion that Service implements domain.ShareCombiner.
var _ domain.ShareCombiner = (*Service)(nil)
