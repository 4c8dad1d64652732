package digo

import "github.com/rs/zerolog"

const defaultCapacity = 32

type options struct {
	logger   zerolog.Logger
	capacity int
}

// Option configures a Registry and the Resolver it builds.
type Option func(*options)

// WithLogger sets the logger used for registration and resolution events.
// Events are emitted at debug level. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity sets the expected number of registrations.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:   zerolog.Nop(),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
