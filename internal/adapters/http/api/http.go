// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gullylabs/gully/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Rankings returns the top n rows for a ranking kind.
	Rankings(ctx context.Context, kind types.Kind, n int) ([]types.Row, error)
}

// Row mirrors the read shape returned by ranking queries.
type Row = types.Row

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	rankingsHandler *RankingsHandler
	exportHandler   *ExportHandler
	chartsHandler   *ChartsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, renderer ChartRenderer) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		rankingsHandler: NewRankingsHandler(deps),
		exportHandler:   NewExportHandler(deps),
		chartsHandler:   NewChartsHandler(deps, renderer),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /api/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /api/rankings/{kind}", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("GET /api/rankings/{kind}/export", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("GET /api/charts/{file}", MetricsMiddleware(s.chartsHandler.HandleGetChart, "charts"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
