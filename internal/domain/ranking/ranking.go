// Package ranking computes the dashboard rankings from loaded records.
//
// All functions are pure: they read their inputs, allocate their result and
// touch nothing else. Calling one twice with the same input yields the same
// output, so results are safe to recompute on every request.
package ranking

import (
	"sort"

	model "github.com/gullylabs/gully/internal/domain/model"
	types "github.com/gullylabs/gully/internal/domain/types"
)

// creditedDismissals are the dismissal kinds credited to the bowler.
// Matching is exact and case-sensitive; run outs, retirements and field
// obstructions are never the bowler's wicket.
var creditedDismissals = map[string]struct{}{
	"caught":            {},
	"bowled":            {},
	"lbw":               {},
	"stumped":           {},
	"caught and bowled": {},
	"hit wicket":        {},
}

// CreditsBowler reports whether a dismissal kind counts toward the
// bowler's wicket tally.
func CreditsBowler(kind string) bool {
	_, ok := creditedDismissals[kind]
	return ok
}

// TopRunScorers returns the n batsmen with the highest sum of batsman runs.
// Every batsman who faced a delivery is a candidate, including those who
// never scored.
func TopRunScorers(deliveries []model.Delivery, n int) []types.Row {
	var t tally
	for _, d := range deliveries {
		t.add(d.Batsman, d.BatsmanRuns)
	}
	return t.top(n)
}

// TopWicketTakers returns the n bowlers with the most credited dismissals.
// Bowlers with no credited dismissal do not appear.
func TopWicketTakers(deliveries []model.Delivery, n int) []types.Row {
	var t tally
	for _, d := range deliveries {
		if CreditsBowler(d.DismissalKind) {
			t.add(d.Bowler, 1)
		}
	}
	return t.top(n)
}

// TopWinners returns the n teams with the most match wins. Matches without
// a winner (ties, no-results) contribute to no team.
func TopWinners(matches []model.Match, n int) []types.Row {
	var t tally
	for _, m := range matches {
		if m.HasWinner() {
			t.add(m.Winner, 1)
		}
	}
	return t.top(n)
}

// tally accumulates integer totals per name, remembering first-appearance
// order so that ties rank in input order.
type tally struct {
	names  []string
	totals map[string]int
}

func (t *tally) add(name string, delta int) {
	if t.totals == nil {
		t.totals = make(map[string]int)
	}
	if _, seen := t.totals[name]; !seen {
		t.names = append(t.names, name)
	}
	t.totals[name] += delta
}

// top returns the n highest totals as ranked rows. n larger than the number
// of distinct names returns everything; n <= 0 returns an empty slice.
func (t *tally) top(n int) []types.Row {
	if n <= 0 {
		return []types.Row{}
	}
	rows := make([]types.Row, 0, len(t.names))
	for _, name := range t.names {
		rows = append(rows, types.Row{Name: name, Value: t.totals[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
