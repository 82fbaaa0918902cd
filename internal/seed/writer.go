package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Output file names, matching the service's default dataset paths.
const (
	matchesFile    = "matches.csv"
	deliveriesFile = "deliveries.csv"
)

// writeMatches writes the match rows as CSV under dir.
func writeMatches(dir string, rows []matchRow) (string, error) {
	path := filepath.Join(dir, matchesFile)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"id", "season", "team1", "team2", "winner"})
	for _, m := range rows {
		records = append(records, []string{
			m.ID,
			strconv.Itoa(m.Season),
			m.Team1,
			m.Team2,
			m.Winner,
		})
	}
	return path, writeCSV(path, records)
}

// writeDeliveries writes the delivery rows as CSV under dir.
func writeDeliveries(dir string, rows []deliveryRow) (string, error) {
	path := filepath.Join(dir, deliveriesFile)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{
		"match_id", "inning", "over", "ball", "batsman", "bowler", "batsman_runs", "dismissal_kind",
	})
	for _, d := range rows {
		records = append(records, []string{
			d.MatchID,
			strconv.Itoa(d.Inning),
			strconv.Itoa(d.Over),
			strconv.Itoa(d.Ball),
			d.Batsman,
			d.Bowler,
			strconv.Itoa(d.BatsmanRuns),
			d.DismissalKind,
		})
	}
	return path, writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), directoryPermission); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
