// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
)

// ExportHandler handles ranking CSV download requests.
type ExportHandler struct {
	deps RankingsDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps RankingsDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /api/rankings/{kind}/export?limit=N requests.
// The response carries the same rows as the JSON endpoint, as a CSV
// attachment with a rank,name,value header.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_rankings"
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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=top_%s.csv", kind))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"rank", "name", "value"})
	for _, row := range rows {
		_ = cw.Write([]string{strconv.Itoa(row.Rank), row.Name, strconv.Itoa(row.Value)})
	}
	cw.Flush()
}
