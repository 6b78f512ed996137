// Package sharing splits letter keys into shares and recovers them.
//
// Shares travel through URL fragments and JSON, so they are exchanged as
// unpadded base64url text and decoded to raw bytes only at the boundary of
// the secret-sharing scheme. Recovery always uses exactly two shares (a
// client share and a server share) and does not depend on their order.
//
// # Errors
//
// Malformed share text yields a *domain.DecodeError; shares that do not
// reconstruct a secret yield a *domain.CombineError. Neither says which of
// the two shares was at fault. Verify collapses both into false.
package sharing
