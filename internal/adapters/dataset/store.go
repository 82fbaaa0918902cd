// Package dataset loads the match and delivery CSV files into memory.
//
// Loading happens at most once per process: the first Load (or first record
// access) parses both files and memoizes either the records or the error.
// Later calls return the memoized outcome without touching the filesystem,
// so edits to the files after startup are invisible until restart.
package dataset

import (
	"context"
	"time"

	model "github.com/gullylabs/gully/internal/domain/model"
)

// Store provides read access to the loaded dataset.
type Store interface {
	// Load parses both files. Idempotent; only the first call does work.
	Load(ctx context.Context) error

	// Matches returns every match record, loading on first access.
	Matches(ctx context.Context) ([]model.Match, error)

	// Deliveries returns every delivery record, loading on first access.
	Deliveries(ctx context.Context) ([]model.Delivery, error)

	// Stats reports load state for diagnostics.
	Stats(ctx context.Context) Stats
}

// Stats describes the memoized load.
type Stats struct {
	Loaded         bool
	MatchCount     int
	DeliveryCount  int
	LoadedAt       time.Time
	LoadDuration   time.Duration
	MatchesPath    string
	DeliveriesPath string
}
