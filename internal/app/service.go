// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the dashboard pages.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gullylabs/gully/internal/adapters/dataset"
	"github.com/gullylabs/gully/internal/domain/ranking"
	"github.com/gullylabs/gully/internal/domain/types"
	"github.com/gullylabs/gully/pkg/logger"
	"github.com/gullylabs/gully/pkg/metrics"
)

// Service implements the API dependencies for the dashboard system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store dataset.Store

	// Configuration
	matchesPath    string
	deliveriesPath string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMatchesPath sets the matches CSV location.
func WithMatchesPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.matchesPath = path
		}
	}
}

// WithDeliveriesPath sets the deliveries CSV location.
func WithDeliveriesPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.deliveriesPath = path
		}
	}
}

// WithStore injects a dataset store, replacing the CSV-backed default.
func WithStore(store dataset.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		matchesPath:    dataset.DefaultMatchesPath,
		deliveriesPath: dataset.DefaultDeliveriesPath,
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service and eagerly loads the dataset. A dataset
// that cannot be read is a startup failure, not a deferred one: the caller
// gets the error immediately and can refuse to serve.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if s.store == nil {
		s.store = dataset.New(
			dataset.WithMatchesPath(s.matchesPath),
			dataset.WithDeliveriesPath(s.deliveriesPath),
		)
	}

	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	stats := s.store.Stats(ctx)
	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("matches", stats.MatchCount),
		logger.Int("deliveries", stats.DeliveryCount),
		logger.Duration("loadTime", stats.LoadDuration),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// TopBatsmen returns the top n batsmen ranked by total runs scored.
func (s *Service) TopBatsmen(ctx context.Context, n int) ([]types.Row, error) {
	deliveries, err := s.store.Deliveries(ctx)
	if err != nil {
		metrics.RecordRankingError(string(types.KindBatsmen))
		return nil, err
	}

	start := time.Now()
	rows := ranking.TopRunScorers(deliveries, n)
	metrics.RecordRankingComputed(string(types.KindBatsmen), time.Since(start))
	return rows, nil
}

// TopBowlers returns the top n bowlers ranked by credited wickets.
func (s *Service) TopBowlers(ctx context.Context, n int) ([]types.Row, error) {
	deliveries, err := s.store.Deliveries(ctx)
	if err != nil {
		metrics.RecordRankingError(string(types.KindBowlers))
		return nil, err
	}

	start := time.Now()
	rows := ranking.TopWicketTakers(deliveries, n)
	metrics.RecordRankingComputed(string(types.KindBowlers), time.Since(start))
	return rows, nil
}

// TopTeams returns the top n teams ranked by matches won.
func (s *Service) TopTeams(ctx context.Context, n int) ([]types.Row, error) {
	matches, err := s.store.Matches(ctx)
	if err != nil {
		metrics.RecordRankingError(string(types.KindTeams))
		return nil, err
	}

	start := time.Now()
	rows := ranking.TopWinners(matches, n)
	metrics.RecordRankingComputed(string(types.KindTeams), time.Since(start))
	return rows, nil
}

// Rankings dispatches to the ranking for the given kind.
func (s *Service) Rankings(ctx context.Context, kind types.Kind, n int) ([]types.Row, error) {
	switch kind {
	case types.KindBowlers:
		return s.TopBowlers(ctx, n)
	case types.KindTeams:
		return s.TopTeams(ctx, n)
	default:
		return s.TopBatsmen(ctx, n)
	}
}

// MatchCount returns the number of matches in the dataset.
func (s *Service) MatchCount(ctx context.Context) (int, error) {
	matches, err := s.store.Matches(ctx)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// DeliveryCount returns the number of deliveries in the dataset.
func (s *Service) DeliveryCount(ctx context.Context) (int, error) {
	deliveries, err := s.store.Deliveries(ctx)
	if err != nil {
		return 0, err
	}
	return len(deliveries), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"matchesPath":    s.matchesPath,
		"deliveriesPath": s.deliveriesPath,
	}

	if s.store != nil {
		ds := s.store.Stats(context.Background())
		stats["loaded"] = ds.Loaded
		stats["matchCount"] = ds.MatchCount
		stats["deliveryCount"] = ds.DeliveryCount
		if ds.Loaded {
			stats["loadedAt"] = ds.LoadedAt.UTC().Format(time.RFC3339)
			stats["loadDurationMs"] = ds.LoadDuration.Milliseconds()
		}
	}

	return stats
}
