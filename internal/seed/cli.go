// Package seed generates a realistic sample dataset so the dashboard can
// run without the real match archive.
package seed

import "os"

// ShowHelp prints usage information for the seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`Gully Dataset Seeder
====================

Generates sample matches.csv and deliveries.csv files for the gully
dashboard. The simulation is deterministic: the same -seed value always
produces the same files.

Usage:
  go run cmd/seed-data/main.go [options]

Options:
  -dir string
        Output directory for the CSV files (default "data")
  -matches int
        Number of matches to simulate (default 120)
  -seed int
        Random seed for the simulation (default 42)
  -verbose
        Enable verbose logging
  -help
        Show help

Examples:
  # Generate the default dataset under ./data
  go run cmd/seed-data/main.go

  # A larger, different season
  go run cmd/seed-data/main.go -matches 400 -seed 7 -dir /tmp/gully-data
`)
}
