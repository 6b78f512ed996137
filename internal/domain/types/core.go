package types

import "github.com/google/uuid"

// LetterID uniquely identifies a sealed letter.
type LetterID = uuid.UUID

// Share is one base64url-encoded (unpadded) Shamir share.
type Share string

// String returns the string form of the share.
func (s Share) String() string { return string(s) }

// Key is a reconstructed secret rendered as base64url text.
type Key string

// String returns the string form of the key.
func (k Key) String() string { return string(k) }

// Digest is a lowercase hex SHA-256 digest.
type Digest string

// String returns the string form of the digest.
func (d Digest) String() string { return string(d) }
