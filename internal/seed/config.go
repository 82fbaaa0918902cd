package seed

import "time"

// Config holds configuration for one dataset generation run.
type Config struct {
	Dir     string // Output directory for the CSV files
	Matches int    // Number of matches to simulate
	Seed    int64  // RNG seed; identical seeds produce identical files
	Verbose bool   // Enable verbose logging
}

// Stats holds generation statistics.
type Stats struct {
	MatchesWritten    int
	DeliveriesWritten int
	NoResultMatches   int
	WicketsCredited   int // dismissals a bowler gets credit for
	RunOuts           int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
