package dataset

import "github.com/gullylabs/gully/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithMatchesPath sets the path of the matches file.
func WithMatchesPath(path string) Option {
	return func(s *CSVStore) {
		if path != "" {
			s.matchesPath = path
		}
	}
}

// WithDeliveriesPath sets the path of the deliveries file.
func WithDeliveriesPath(path string) Option {
	return func(s *CSVStore) {
		if path != "" {
			s.deliveriesPath = path
		}
	}
}

// WithLogger sets the logger used during loading.
func WithLogger(log logger.Logger) Option {
	return func(s *CSVStore) {
		if log != nil {
			s.log = log
		}
	}
}
