// Package tracker implements the tally command handlers: pure operations
// over an in-memory record set, plus a Tracker that runs one
// load-mutate-save cycle per command invocation against a store handle.
package tracker

import "github.com/tallyworks/tally/pkg/types"

// NextID returns the next record id for the set: max(ids) + 1, or 1 for an
// empty set. Callers that also keep a journal raise this past the journal's
// high-water mark so deleted ids are not reassigned.
func NextID(records []types.Record) int64 {
	var max int64
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// Find returns the index of the record with the given id, or -1 if no such
// record exists. Linear scan; the set is small and unsorted.
func Find(records []types.Record, id int64) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes the record with the given id, preserving the order of the
// remaining records. Returns types.ErrNotFound if the id is absent.
func Remove(records []types.Record, id int64) ([]types.Record, error) {
	i := Find(records, id)
	if i < 0 {
		return nil, types.ErrNotFound
	}
	return append(records[:i:i], records[i+1:]...), nil
}

// Filter returns the records whose status exactly matches the given value,
// input order preserved. An empty status matches every record. Filter
// never mutates its input.
func Filter(records []types.Record, status string) []types.Record {
	if status == "" {
		return records
	}
	var out []types.Record
	for _, r := range records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}
