package charts

import "github.com/gullylabs/gully/pkg/logger"

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithWidth sets the output image width in pixels.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithHeight sets the output image height in pixels.
func WithHeight(height int) Option {
	return func(r *Renderer) {
		if height > 0 {
			r.height = height
		}
	}
}

// WithLogger sets the renderer's logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}
