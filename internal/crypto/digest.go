package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the length in bytes of a SHA-256 digest.
const DigestSize = sha256.Size

// SHA256Hex returns the lowercase hex SHA-256 digest of b.
func SHA256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Checksum returns the first n bytes of the SHA-256 digest of b. n is capped
// at DigestSize.
func Checksum(b []byte, n int) []byte {
	sum := sha256.Sum256(b)
	if n > DigestSize {
		n = DigestSize
	}
	return sum[:n]
}
