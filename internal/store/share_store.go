package store

import (
	"encoding/json"
	"sync"

	"timecapsule/internal/domain"
)

const sharesFile = "shares.json"

// ShareFileStore persists server shares to disk. Every custody record is
// encrypted separately under the custodian passphrase and bound to its
// letter id.
type ShareFileStore struct {
	file recordFile[blob]
	mu   sync.Mutex
}

// NewShareFileStore returns a ShareFileStore rooted at dir.
func NewShareFileStore(dir string) *ShareFileStore {
	return &ShareFileStore{file: newRecordFile[blob](dir, sharesFile)}
}

// SaveCustodyRecord encrypts and stores the record, replacing any previous one.
func (s *ShareFileStore) SaveCustodyRecord(passphrase string, record domain.CustodyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.LetterID.String()
	N, r, p := scryptParamsDefault()
	bl, err := sealJSON(passphrase, record, []byte(id), N, r, p)
	if err != nil {
		return err
	}
	return s.file.put(id, bl)
}

// LoadCustodyRecord decrypts the record for id.
func (s *ShareFileStore) LoadCustodyRecord(
	passphrase string,
	id domain.LetterID,
) (domain.CustodyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bl, ok, err := s.file.get(id.String())
	if err != nil || !ok {
		return domain.CustodyRecord{}, false, err
	}
	raw, err := decrypt(passphrase, bl, []byte(id.String()))
	if err != nil {
		return domain.CustodyRecord{}, false, err
	}
	var record domain.CustodyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.CustodyRecord{}, false, err
	}
	return record, true, nil
}

// Compile-time assertion that ShareFileStore implements domain.ShareStore.
var _ domain.ShareStore = (*ShareFileStore)(nil)
