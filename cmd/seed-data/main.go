package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gullylabs/gully/internal/seed"
	"github.com/gullylabs/gully/pkg/logger"
)

// Default configuration constants.
const (
	defaultMatches = 120
	defaultSeed    = 42
	defaultTimeout = 5 * time.Minute
)

func main() {
	var (
		dir     = flag.String("dir", "data", "Output directory for the CSV files")
		matches = flag.Int("matches", defaultMatches, "Number of matches to simulate")
		seedVal = flag.Int64("seed", defaultSeed, "Random seed for the simulation")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	// Setup logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Create generation configuration
	config := &seed.Config{
		Dir:     *dir,
		Matches: *matches,
		Seed:    *seedVal,
		Verbose: *verbose,
	}

	// Run the generation
	if err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
