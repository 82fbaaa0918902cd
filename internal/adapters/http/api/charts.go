// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gullylabs/gully/internal/adapters/charts"
	"github.com/gullylabs/gully/internal/domain/types"
)

// ChartRenderer defines the interface for turning ranking rows into PNGs.
type ChartRenderer interface {
	Bars(ctx context.Context, rows []types.Row, spec charts.BarSpec) ([]byte, error)
}

// ChartsHandler handles chart image requests.
type ChartsHandler struct {
	deps     RankingsDependencies
	renderer ChartRenderer
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps RankingsDependencies, renderer ChartRenderer) *ChartsHandler {
	return &ChartsHandler{deps: deps, renderer: renderer}
}

// HandleGetChart handles GET /api/charts/{kind}.png?limit=N requests.
// Limit semantics match the rankings endpoint.
func (h *ChartsHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_chart"
	file := r.PathValue("file")
	name, found := strings.CutSuffix(file, ".png")
	if !found {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrUnknownKind))
		return
	}
	kind, ok := types.ParseKind(name)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrUnknownKind))
		return
	}
	n, err := limitFromQuery(r, kind)
	if err != nil {
		writeLimitError(w, op, err)
		return
	}
	rows, err := h.deps.Rankings(r.Context(), kind, n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	png, err := h.renderer.Bars(r.Context(), rows, charts.SpecFor(kind, n))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
