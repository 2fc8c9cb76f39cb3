package types

import "strings"

// Record statuses. A record moves freely between these states; there are
// no restricted transitions.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

// Statuses lists the recognized status values in lifecycle order.
var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// Record is one tracked item: a task or an expense entry.
// IDs are positive integers assigned monotonically; CreatedAt is set once
// at creation and never changes, UpdatedAt is refreshed on every mutation.
type Record struct {
	ID          int64     `json:"id" validate:"required,min=1"`
	Description string    `json:"description" validate:"required"`
	Status      string    `json:"status" validate:"required,recordstatus"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   Timestamp `json:"createdAt" validate:"required"`
	UpdatedAt   Timestamp `json:"updatedAt" validate:"required,gtefield=CreatedAt"`
}

// SetStatus sets the record status to the given value.
// Returns ErrInvalidStatus if the value is not recognized.
// Idempotent: setting the current status succeeds and still refreshes
// UpdatedAt.
func (r *Record) SetStatus(status string) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	r.Status = status
	r.UpdatedAt = Now()
	return nil
}

// SetDescription replaces the description.
// Returns ErrInvalidDescription if the new value is empty or blank.
func (r *Record) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrInvalidDescription
	}
	r.Description = description
	r.UpdatedAt = Now()
	return nil
}

// SetCategory replaces the free-text category tag. An empty value clears it.
func (r *Record) SetCategory(category string) {
	r.Category = category
	r.UpdatedAt = Now()
}
