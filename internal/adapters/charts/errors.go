package charts

import "errors"

// Sentinel kinds for chart rendering errors.
var (
	ErrRenderFailed = errors.New("chart render failed")
)
