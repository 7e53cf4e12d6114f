package compositor

import (
	"log/slog"

	"github.com/gogpu/hostbridge"
)

// DefaultMaxTextureSize is the largest texture side accepted without
// downscaling.
const DefaultMaxTextureSize = 8192

// Option configures a Compositor during creation.
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	name           string
	appleGPU       bool
	maxTextureSize int
	creator        TextureCreator
	logger         *slog.Logger
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		name:           HeadlessName,
		appleGPU:       false,
		maxTextureSize: DefaultMaxTextureSize,
		creator:        nil, // NewMemoryStore() at construction time
		logger:         nil, // hostbridge.Logger() at construction time
	}
}

// WithAppleGPU sets the capability flag used for format translation.
func WithAppleGPU(apple bool) Option {
	return func(o *options) {
		o.appleGPU = apple
	}
}

// WithMaxTextureSize sets the largest texture side. Larger images are
// downscaled to fit. A size of zero or less disables downscaling.
func WithMaxTextureSize(size int) Option {
	return func(o *options) {
		o.maxTextureSize = size
	}
}

// WithTextureCreator sets where uploaded textures are created.
// By default textures live in an in-memory store.
func WithTextureCreator(c TextureCreator) Option {
	return func(o *options) {
		o.creator = c
	}
}

// WithName sets the platform name reported by Name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used by the compositor.
// By default the compositor uses hostbridge.Logger().
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
