package crypto

import (
	"encoding/base64"
	"strings"

	"timecapsule/internal/domain"
)

var (
	toStd = strings.NewReplacer("-", "+", "_", "/")
	toURL = strings.NewReplacer("+", "-", "/", "_")
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeB64 decodes standard (padded) base64.
func DecodeB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &domain.DecodeError{Err: err}
	}
	return b, nil
}

// EncodeURL returns base64url text with the trailing padding stripped.
func EncodeURL(b []byte) string {
	return strings.TrimRight(toURL.Replace(B64(b)), "=")
}

// DecodeURL reverses EncodeURL. The URL alphabet is mapped back to the
// standard one and padding is restored to a multiple of four before decoding.
func DecodeURL(s string) ([]byte, error) {
	std := toStd.Replace(s)
	if rem := len(std) % 4; rem != 0 {
		std += strings.Repeat("=", 4-rem)
	}
	return DecodeB64(std)
}
