// Package model contains the typed records parsed from the dataset files.
package model

import "strings"

// Match is one row of matches.csv. Winner holds the raw cell value; a tied
// or abandoned match has no winner and the cell is empty or an NA token.
type Match struct {
	ID     string // match identifier as it appears in the file
	Winner string // winning team name, possibly absent
}

// Delivery is one row of deliveries.csv (one ball bowled).
type Delivery struct {
	Batsman       string // striker on this ball
	BatsmanRuns   int    // runs credited to the striker's bat
	Bowler        string // bowler of this ball
	DismissalKind string // how a wicket fell, empty when none did
}

// naTokens are the conventional spellings of a missing value in exported
// CSV data. Matched exactly after trimming surrounding whitespace.
var naTokens = map[string]struct{}{
	"NA":   {},
	"N/A":  {},
	"null": {},
	"NULL": {},
	"NaN":  {},
	"None": {},
}

// Absent reports whether a raw cell value denotes a missing value.
func Absent(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return true
	}
	_, ok := naTokens[trimmed]
	return ok
}

// HasWinner reports whether the match produced a winner.
func (m Match) HasWinner() bool {
	return !Absent(m.Winner)
}
