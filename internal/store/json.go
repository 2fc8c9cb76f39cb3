package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tallyworks/tally/pkg/types"
)

// recordsFileName is the store file inside the data directory.
const recordsFileName = "records.json"

// jsonStore keeps the record set as one JSON array file.
type jsonStore struct {
	path string
}

func newJSONStore(dataDir string) *jsonStore {
	return &jsonStore{path: filepath.Join(dataDir, recordsFileName)}
}

// Load reads and validates the full record set. Records are validated
// against their schema on the way in; a file that parses but carries a
// nonconforming record is reported as corrupt rather than trusted.
func (s *jsonStore) Load() ([]types.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStoreCorrupt, s.path, err)
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: record %d: %v", types.ErrStoreCorrupt, s.path, i, err)
		}
	}
	return records, nil
}

// Save rewrites the whole store atomically. A nil sequence is written as
// an empty array so the file always holds valid JSON.
func (s *jsonStore) Save(records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	return writeFileAtomic(s.path, append(data, '\n'))
}

func (s *jsonStore) Close() error { return nil }

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern so a crash mid-write cannot leave a truncated store.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".records-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
