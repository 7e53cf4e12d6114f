package bridge

import (
	"log/slog"

	"github.com/gogpu/hostbridge"
)

// Option configures a Bridge during creation.
type Option func(*options)

// options holds optional configuration for Bridge creation.
type options struct {
	logger *slog.Logger
}

// defaultOptions returns the default bridge options.
func defaultOptions() options {
	return options{
		logger: nil, // hostbridge.Logger() at construction time
	}
}

// WithLogger sets the logger used by the bridge.
// By default the bridge uses hostbridge.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) resolveLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return hostbridge.Logger()
}
