package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tallyworks/tally/pkg/types"
)

// journalFileName is the append-only mutation log inside the data directory.
const journalFileName = "journal.jsonl"

// Journal entry operations.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpMark   = "mark"
	OpDelete = "delete"
)

// Entry is one journaled mutation. Entry IDs are UUID v7 so the journal
// sorts chronologically by id as well as by position.
type Entry struct {
	EntryID   string `json:"entry_id"`
	Op        string `json:"op"`
	RecordID  int64  `json:"record_id"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"created_at"`
}

// Journal is an append-only JSONL log of store mutations. It backs the
// history command and remembers the highest record id ever assigned so
// deleted ids are not reused.
type Journal struct {
	path string
}

// OpenJournal returns the journal for the given data directory. The file
// is created lazily on first append.
func OpenJournal(dataDir string) *Journal {
	return &Journal{path: filepath.Join(dataDir, journalFileName)}
}

// Append records one mutation. Each entry is a single JSON line flushed to
// disk before returning.
func (j *Journal) Append(op string, recordID int64, detail string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating entry ID: %w", err)
	}
	entry := Entry{
		EntryID:   id.String(),
		Op:        op,
		RecordID:  recordID,
		Detail:    detail,
		CreatedAt: types.Now().Format(types.TimestampLayout),
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling entry: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", j.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("writing entry: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", j.path, err)
	}
	return f.Close()
}

// Entries returns all journal entries in append order. A missing journal
// yields an empty set. Malformed lines are skipped.
func (j *Journal) Entries() ([]Entry, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", j.path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			// Skip malformed lines; the journal is advisory.
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", j.path, err)
	}
	return entries, nil
}

// HighWaterID returns the highest record id the journal has seen, or zero
// when the journal is missing or unreadable. An unreadable journal degrades
// id assignment to plain max-plus-one over the live set.
func (j *Journal) HighWaterID() int64 {
	entries, err := j.Entries()
	if err != nil {
		return 0
	}
	var hi int64
	for _, e := range entries {
		if e.RecordID > hi {
			hi = e.RecordID
		}
	}
	return hi
}
