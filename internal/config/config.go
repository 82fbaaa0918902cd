// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) returning defaults; Load layers file and env on top.
// - All functions accept context.Context as the first parameter.
// - External errors must be wrapped via this package's sentinel kinds.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8501".
	Addr string `koanf:"addr"`

	// MatchesPath locates the matches CSV file.
	MatchesPath string `koanf:"matches_path"`

	// DeliveriesPath locates the deliveries CSV file.
	DeliveriesPath string `koanf:"deliveries_path"`

	// ChartWidth and ChartHeight set the rendered chart size in pixels.
	ChartWidth  int `koanf:"chart_width"`
	ChartHeight int `koanf:"chart_height"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use (e.g., loading
// from remote sources) and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8501",
		MatchesPath:    "data/matches.csv",
		DeliveriesPath: "data/deliveries.csv",
		ChartWidth:     1000,
		ChartHeight:    600,
	}
}
