package tracker

import (
	"strings"

	"github.com/tallyworks/tally/internal/store"
	"github.com/tallyworks/tally/pkg/types"
)

// Tracker executes tracker operations against a store handle. Each mutating
// operation performs exactly one load, one in-memory mutation, and one full
// save; a validation failure before the save leaves the store untouched.
//
// The journal is advisory: a failed append never undoes a saved mutation.
type Tracker struct {
	store   store.Store
	journal *store.Journal
}

// New returns a Tracker over the given store. The journal may be nil, in
// which case history is unavailable and id assignment falls back to
// max-plus-one over the live set.
func New(st store.Store, journal *store.Journal) *Tracker {
	return &Tracker{store: st, journal: journal}
}

// Init materializes the store on disk: the current set (empty when the
// store is new) is loaded and written straight back. Idempotent on an
// existing store.
func (t *Tracker) Init() error {
	records, err := t.store.Load()
	if err != nil {
		return err
	}
	return t.store.Save(records)
}

// Add creates a new record with both timestamps set to now. The id is the
// successor of both the live set's maximum and the journal high-water mark.
// An empty status defaults to todo.
func (t *Tracker) Add(description, category, status string) (types.Record, error) {
	if strings.TrimSpace(description) == "" {
		return types.Record{}, types.ErrInvalidDescription
	}
	if status == "" {
		status = types.StatusTodo
	}
	if !types.ValidStatus(status) {
		return types.Record{}, types.ErrInvalidStatus
	}

	records, err := t.store.Load()
	if err != nil {
		return types.Record{}, err
	}

	id := NextID(records)
	if t.journal != nil {
		if hi := t.journal.HighWaterID(); hi >= id {
			id = hi + 1
		}
	}

	now := types.Now()
	rec := types.Record{
		ID:          id,
		Description: description,
		Status:      status,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.store.Save(append(records, rec)); err != nil {
		return types.Record{}, err
	}
	t.log(store.OpAdd, id, description)
	return rec, nil
}

// Update overwrites the description of the record with the given id, and
// the category when one is supplied. CreatedAt is never touched; UpdatedAt
// is refreshed. Returns types.ErrNotFound if the id is absent.
func (t *Tracker) Update(id int64, description string, category *string) (types.Record, error) {
	if id < 1 {
		return types.Record{}, types.ErrInvalidID
	}

	records, err := t.store.Load()
	if err != nil {
		return types.Record{}, err
	}
	i := Find(records, id)
	if i < 0 {
		return types.Record{}, types.ErrNotFound
	}

	if err := records[i].SetDescription(description); err != nil {
		return types.Record{}, err
	}
	if category != nil {
		records[i].SetCategory(*category)
	}
	if err := t.store.Save(records); err != nil {
		return types.Record{}, err
	}
	t.log(store.OpUpdate, id, description)
	return records[i], nil
}

// Mark sets the status of the record with the given id.
// Returns types.ErrNotFound if the id is absent and types.ErrInvalidStatus
// for an unrecognized status.
func (t *Tracker) Mark(id int64, status string) (types.Record, error) {
	if id < 1 {
		return types.Record{}, types.ErrInvalidID
	}
	if !types.ValidStatus(status) {
		return types.Record{}, types.ErrInvalidStatus
	}

	records, err := t.store.Load()
	if err != nil {
		return types.Record{}, err
	}
	i := Find(records, id)
	if i < 0 {
		return types.Record{}, types.ErrNotFound
	}

	if err := records[i].SetStatus(status); err != nil {
		return types.Record{}, err
	}
	if err := t.store.Save(records); err != nil {
		return types.Record{}, err
	}
	t.log(store.OpMark, id, status)
	return records[i], nil
}

// Delete removes the record with the given id and rewrites the store.
// Returns types.ErrNotFound if the id is absent.
func (t *Tracker) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}

	records, err := t.store.Load()
	if err != nil {
		return err
	}
	remaining, err := Remove(records, id)
	if err != nil {
		return err
	}
	if err := t.store.Save(remaining); err != nil {
		return err
	}
	t.log(store.OpDelete, id, "")
	return nil
}

// List returns the records matching the optional status filter, in
// insertion order. List never writes the store.
func (t *Tracker) List(status string) ([]types.Record, error) {
	if status != "" && !types.ValidStatus(status) {
		return nil, types.ErrInvalidStatus
	}
	records, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return Filter(records, status), nil
}

// History returns journaled mutations in append order. A positive limit
// keeps only the most recent entries.
func (t *Tracker) History(limit int) ([]store.Entry, error) {
	if t.journal == nil {
		return nil, nil
	}
	entries, err := t.journal.Entries()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// log appends to the journal, best effort.
func (t *Tracker) log(op string, id int64, detail string) {
	if t.journal == nil {
		return
	}
	_ = t.journal.Append(op, id, detail)
}
