// Package proof produces and checks tamper-evidence records for sealed letters.
//
// Text, raw buffers and standard base64 text all hash to the same SHA-256
// digest of the underlying bytes, rendered as lowercase hex. A proof record
// is created once at seal time over the ciphertext and is only ever read
// afterwards to confirm the ciphertext has not changed.
//
// Verify is a yes/no question and reports false for any failure, including
// malformed base64. Check keeps the two apart: it returns a
// *domain.DecodeError for malformed input and domain.ErrIntegrity for a
// mismatch.
package proof
