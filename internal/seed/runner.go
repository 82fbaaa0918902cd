package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/gullylabs/gully/internal/domain/ranking"
	"github.com/gullylabs/gully/pkg/logger"
)

// Run generates a sample dataset and writes it to the configured directory.
func Run(ctx context.Context, config *Config) error {
	if config.Matches <= 0 {
		return fmt.Errorf("matches must be positive, got %d", config.Matches)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generation cancelled: %w", err)
	}

	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "generating sample dataset",
		logger.String("dir", config.Dir),
		logger.Int("matches", config.Matches),
		logger.Any("seed", config.Seed),
		logger.Any("verbose", config.Verbose))

	// Step 1: Simulate the matches
	g := newGenerator(config.Seed)
	matches, deliveries := g.generate(config.Matches)

	// Step 2: Write both files
	matchesPath, err := writeMatches(config.Dir, matches)
	if err != nil {
		return fmt.Errorf("matches write failed: %w", err)
	}
	deliveriesPath, err := writeDeliveries(config.Dir, deliveries)
	if err != nil {
		return fmt.Errorf("deliveries write failed: %w", err)
	}

	// Step 3: Summarize what was produced
	stats.MatchesWritten = len(matches)
	stats.DeliveriesWritten = len(deliveries)
	for _, m := range matches {
		if m.Winner == "" {
			stats.NoResultMatches++
		}
	}
	for _, d := range deliveries {
		if d.DismissalKind == "" {
			continue
		}
		if ranking.CreditsBowler(d.DismissalKind) {
			stats.WicketsCredited++
		} else {
			stats.RunOuts++
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, stats, matchesPath, deliveriesPath)
	return nil
}

// displayFinalStats logs the generation summary.
func displayFinalStats(ctx context.Context, stats *Stats, matchesPath, deliveriesPath string) {
	logger.Get().Info(ctx, "sample dataset written",
		logger.String("matchesFile", matchesPath),
		logger.String("deliveriesFile", deliveriesPath),
		logger.Int("matches", stats.MatchesWritten),
		logger.Int("deliveries", stats.DeliveriesWritten),
		logger.Int("noResultMatches", stats.NoResultMatches),
		logger.Int("wicketsCredited", stats.WicketsCredited),
		logger.Int("runOuts", stats.RunOuts),
		logger.Duration("took", stats.Duration))
}
