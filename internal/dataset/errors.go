package dataset

import "errors"

// Sentinel errors reported by dataset operations.
var (
	ErrInputNotFound   = errors.New("input dataset not found")
	ErrMissingColumn   = errors.New("missing required column")
	ErrDuplicateColumn = errors.New("column already exists")
	ErrLengthMismatch  = errors.New("column length does not match record count")
	ErrMalformedRow    = errors.New("malformed dataset row")
	ErrEmptyHeader     = errors.New("dataset header is empty")
)
