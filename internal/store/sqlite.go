package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tallyworks/tally/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "tally.db"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
	id          INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	status      TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
`

// sqliteStore holds the record set in a single SQLite table. Load and Save
// keep the same whole-set contract as the JSON backend: Save replaces every
// row in one transaction.
type sqliteStore struct {
	db *sql.DB
}

func openSQLiteStore(dataDir string) (*sqliteStore, error) {
	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Load() ([]types.Record, error) {
	rows, err := s.db.Query(
		"SELECT id, description, status, category, created_at, updated_at FROM records ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		var createdAt, updatedAt string
		if err := rows.Scan(&r.ID, &r.Description, &r.Status, &r.Category, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if r.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", types.ErrStoreCorrupt, r.ID, err)
		}
		if r.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", types.ErrStoreCorrupt, r.ID, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", types.ErrStoreCorrupt, r.ID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (s *sqliteStore) Save(records []types.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	for _, r := range records {
		_, err := tx.Exec(
			"INSERT INTO records (id, description, status, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			r.ID, r.Description, r.Status, r.Category,
			r.CreatedAt.Format(types.TimestampLayout),
			r.UpdatedAt.Format(types.TimestampLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// parseTimestamp reads a stored timestamp, accepting the store layout and
// RFC3339.
func parseTimestamp(s string) (types.Timestamp, error) {
	for _, layout := range []string{types.TimestampLayout, time.RFC3339} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return types.Timestamp{Time: t.UTC()}, nil
		}
	}
	return types.Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}
