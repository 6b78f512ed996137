// Package letter seals time-capsule letters and opens them later.
//
// # Sealing
//
//  1. Generate a fresh 32-byte key and encrypt the letter with it.
//  2. Record a proof (SHA-256) over the ciphertext.
//  3. Split the key into a client share and a server share.
//  4. Deposit the server share with the custodian, keyed by letter id.
//  5. Persist the letter and hand the client share back to the caller,
//     usually as the fragment of a share link.
//
// # Opening
//
//  1. Load the letter and ask the custodian for the server share; the
//     custodian refuses until the unlock time (domain.ErrStillSealed).
//  2. Check the proof before anything is decrypted (domain.ErrIntegrity).
//  3. Combine the two shares and decrypt.
//
// The key only ever exists in memory and is wiped after use.
package letter
