// Package store persists tally records. The canonical backend is a single
// JSON array file rewritten in full on every mutation; an alternative
// SQLite backend holds the same record set in one table. Both load the
// entire set into memory and save it back whole; there is no partial load
// or incremental append.
package store

import (
	"fmt"
	"os"

	"github.com/tallyworks/tally/pkg/types"
)

// Store translates between the on-disk representation and an in-memory
// ordered sequence of records.
type Store interface {
	// Load returns every record in the store in insertion order.
	// A missing store yields an empty set and nil error. A store that
	// exists but cannot be parsed, or that contains records failing
	// schema validation, returns an error wrapping types.ErrStoreCorrupt;
	// the caller chooses whether to degrade or abort.
	Load() ([]types.Record, error)

	// Save serializes the full sequence and overwrites the store,
	// creating it if absent. The write is atomic: readers see either the
	// old contents or the new, never a partial file.
	Save(records []types.Record) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open initializes the backend described by cfg, creating the data
// directory if it does not exist.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return newJSONStore(dataDir), nil
	case types.BackendSQLite:
		return openSQLiteStore(dataDir)
	default:
		return nil, types.ErrBackendUnknown
	}
}
