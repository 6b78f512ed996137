// Package crypto exposes the minimal primitives used by timecapsule.
//
// Contents
//
//   - Standard and URL-safe base64 codecs (B64, DecodeB64, EncodeURL, DecodeURL)
//   - SHA-256 hex digests (SHA256Hex) and short display fingerprints (Fingerprint)
//   - XChaCha20-Poly1305 letter encryption (NewKey, Seal, Open)
//   - The default 2-of-n secret-sharing scheme (Shamir)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Decoders return *domain.DecodeError so callers can test for
// domain.ErrDecode with errors.Is. Callers should treat keys as sensitive
// and rely on Wipe when practical to reduce lifetime in memory.
package crypto
