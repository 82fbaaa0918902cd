// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/gullylabs/gully/internal/domain/types"
)

// RankingsDependencies defines the interface for ranking queries.
type RankingsDependencies interface {
	Rankings(ctx context.Context, kind types.Kind, n int) ([]types.Row, error)
}

// RankingsHandler handles ranking requests.
type RankingsHandler struct {
	deps RankingsDependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// HandleGetRankings handles GET /api/rankings/{kind}?limit=N requests.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_rankings"
	kind, ok := kindFromPath(r)
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
	writeJSON(w, http.StatusOK, rows)
}

// writeLimitError maps limit parse failures onto their response codes.
func writeLimitError(w http.ResponseWriter, op string, err error) {
	if err == ErrLimitExceeded {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrLimitExceeded))
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
}
