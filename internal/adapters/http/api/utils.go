// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/gullylabs/gully/internal/domain/types"
)

// kindFromPath resolves the {kind} path segment for a request.
func kindFromPath(r *http.Request) (types.Kind, bool) {
	return types.ParseKind(r.PathValue("kind"))
}

// limitFromQuery resolves ?limit=N against the kind's bounds. A missing
// limit falls back to the kind's default; anything below 1 or unparseable
// is ErrBadRequest, anything above the max is ErrLimitExceeded.
func limitFromQuery(r *http.Request, kind types.Kind) (int, error) {
	bounds := kind.Bounds()
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return bounds.Default, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrBadRequest
	}
	if n > bounds.Max {
		return 0, ErrLimitExceeded
	}
	return n, nil
}
