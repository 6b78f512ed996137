package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// recordFile is a JSON object on disk mapping letter ids to records of type V.
type recordFile[V any] struct {
	path string
}

func newRecordFile[V any](dir, name string) recordFile[V] {
	return recordFile[V]{path: filepath.Join(dir, name)}
}

// load returns the stored records; a missing file yields an empty map.
func (f recordFile[V]) load() (map[string]V, error) {
	records := map[string]V{}
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return records, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(f.path), err)
	}
	return records, nil
}

// get returns the record for id and whether it exists.
func (f recordFile[V]) get(id string) (V, bool, error) {
	var zero V
	records, err := f.load()
	if err != nil {
		return zero, false, err
	}
	v, ok := records[id]
	return v, ok, nil
}

// put stores v under id and rewrites the file.
func (f recordFile[V]) put(id string, v V) error {
	records, err := f.load()
	if err != nil {
		return err
	}
	records[id] = v
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(f.path, b, 0o600)
}

// writeFileAtomic writes b to a temp file in the same directory, syncs it
// and renames it over path.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
