package interfaces

import domaintypes "timecapsule/internal/domain/types"

// LetterStore persists sealed letters.
type LetterStore interface {
	SaveLetter(letter domaintypes.Letter) error
	LoadLetter(id domaintypes.LetterID) (domaintypes.Letter, bool, error)
	ListLetters() ([]domaintypes.Letter, error)
}

// ShareStore persists server shares, encrypted under passphrase.
type ShareStore interface {
	SaveCustodyRecord(passphrase string, record domaintypes.CustodyRecord) error
	LoadCustodyRecord(
		passphrase string,
		id domaintypes.LetterID,
	) (domaintypes.CustodyRecord, bool, error)
}
