// Package main runs the key server that holds server shares for sealed
// letters and releases each one only after the letter's unlock time.
//
// HTTP API
//
//	POST /shares { "letter_id", "share", "unlock_at" }
//	    Deposit a server share. 201 on success, 409 if the letter already
//	    has a share on deposit.
//
//	GET /shares/{id}
//	    Return { "share" } once unlock_at has passed. 404 for unknown
//	    letters; 423 Locked before the unlock time, with Retry-After set to
//	    the remaining seconds.
//
// Behaviour
//
//   - Shares are stored in shares.json under --home, each record sealed
//     with a key derived from the passphrase (scrypt + ChaCha20-Poly1305).
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - An access log records method, path, status and duration for each
//     request.
//   - The default listen address is :8080.
//
// The key server never sees client shares, so it cannot decrypt letters on
// its own.
package main
