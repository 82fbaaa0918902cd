package dataset

import "errors"

// Sentinel kinds for dataset load errors.
var (
	ErrFileUnreadable = errors.New("dataset file unreadable")
	ErrMissingColumn  = errors.New("dataset column missing")
	ErrMalformedRow   = errors.New("dataset row malformed")
	ErrBadCell        = errors.New("dataset cell malformed")
)
