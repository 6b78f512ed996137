package crypto

import (
	"github.com/hashicorp/vault/shamir"

	"timecapsule/internal/domain"
)

// Shamir is the default domain.SecretScheme. Each share is the y values of
// the byte polynomials followed by a one-byte x tag, so a share is one byte
// longer than the secret.
type Shamir struct{}

// Split takes a secret and returns parts shares, threshold of which
// reconstruct it.
func (Shamir) Split(secret []byte, parts, threshold int) ([][]byte, error) {
	return shamir.Split(secret, parts, threshold)
}

// Combine reconstructs the secret. It fails on fewer than two parts, parts
// of unequal length and duplicate x tags; it cannot tell a share from a
// different split apart from a genuine one.
func (Shamir) Combine(parts [][]byte) ([]byte, error) {
	return shamir.Combine(parts)
}

var _ domain.SecretScheme = Shamir{}
