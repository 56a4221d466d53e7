package service

import "github.com/rise-and-shine/qingstor/logger"

// Options holds configuration options for Init.
type Options struct {
	// Logger receives the service's diagnostic entries. Defaults to a no-op logger.
	Logger logger.Logger
}

// Option is a functional option for configuring Init behavior.
type Option func(*Options)

// WithLogger sets the logger used by the service. A nil logger is ignored.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
