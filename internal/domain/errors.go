package domain

import "errors"

// Input errors.
var (
	// ErrDecode indicates text is not valid base64 after normalisation.
	ErrDecode = errors.New("invalid base64 input")

	// ErrCombine indicates two shares do not reconstruct a secret.
	ErrCombine = errors.New("cannot recover key from shares")
)

// Letter lifecycle errors.
var (
	// ErrLetterNotFound indicates no letter or custody record exists for the id.
	ErrLetterNotFound = errors.New("letter not found")

	// ErrStillSealed indicates the unlock time has not been reached yet.
	ErrStillSealed = errors.New("letter is still sealed")

	// ErrShareExists indicates a server share was already deposited for the id.
	ErrShareExists = errors.New("server share already deposited")

	// ErrUnlockInPast indicates a letter was sealed with an unlock time that has passed.
	ErrUnlockInPast = errors.New("unlock time must be in the future")

	// ErrEmptyLetter indicates there is nothing to seal.
	ErrEmptyLetter = errors.New("letter is empty")
)

// Integrity errors.
var (
	// ErrIntegrity indicates the ciphertext no longer matches its proof.
	ErrIntegrity = errors.New("content integrity could not be confirmed")

	// ErrDecrypt indicates the recovered key did not open the ciphertext.
	ErrDecrypt = errors.New("failed to decrypt letter")

	// ErrWrongPassphrase indicates the custody passphrase is wrong or the record is corrupt.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted share record")
)

// DecodeError reports malformed base64 input. errors.Is(err, ErrDecode) holds.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return ErrDecode.Error()
	}
	return ErrDecode.Error() + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// CombineError reports that share reconstruction failed. The message is the
// same whichever share was at fault; the cause is only reachable via Unwrap.
type CombineError struct {
	Err error
}

func (e *CombineError) Error() string { return ErrCombine.Error() }

func (e *CombineError) Unwrap() error { return e.Err }

// Is matches ErrCombine.
func (e *CombineError) Is(target error) bool { return target == ErrCombine }
