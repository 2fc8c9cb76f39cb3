package types

import "errors"

// Store and handler errors. Callers match with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidID          = errors.New("invalid record ID")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidDescription = errors.New("description must not be empty")
	ErrInvalidData        = errors.New("invalid record data")
	ErrStoreCorrupt       = errors.New("store file is corrupt")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
