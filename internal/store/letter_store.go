package store

import (
	"sort"
	"sync"

	"timecapsule/internal/domain"
)

const lettersFile = "letters.json"

// LetterFileStore persists sealed letters to disk.
type LetterFileStore struct {
	file recordFile[domain.Letter]
	mu   sync.Mutex
}

// NewLetterFileStore returns a LetterFileStore rooted at dir.
func NewLetterFileStore(dir string) *LetterFileStore {
	return &LetterFileStore{file: newRecordFile[domain.Letter](dir, lettersFile)}
}

// SaveLetter stores or replaces the letter.
func (s *LetterFileStore) SaveLetter(letter domain.Letter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.file.put(letter.ID.String(), letter)
}

// LoadLetter retrieves a letter by id.
func (s *LetterFileStore) LoadLetter(id domain.LetterID) (domain.Letter, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.file.get(id.String())
}

// ListLetters returns every stored letter ordered by unlock time.
func (s *LetterFileStore) ListLetters() ([]domain.Letter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letters, err := s.file.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Letter, 0, len(letters))
	for _, l := range letters {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnlockAt.Equal(out[j].UnlockAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UnlockAt.Before(out[j].UnlockAt)
	})
	return out, nil
}

// Compile-time assertion that LetterFileStore implements domain.LetterStore.
var _ domain.LetterStore = (*LetterFileStore)(nil)
