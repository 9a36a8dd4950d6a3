package linkedlist

import "github.com/mgnsk/linkedlist/internal/logger"

// Option is a registry configuration option.
type Option interface {
	apply(*registryOptions)
}

// Logger receives registry events.
type Logger interface {
	Debug(format string, args ...any)
}

type registryOptions struct {
	logger   Logger
	capacity int
}

func newDefaultRegistryOptions() registryOptions {
	return registryOptions{
		logger:   logger.Discard(),
		capacity: 0,
	}
}

// WithCapacity option configures the maximum number of lists in the registry.
//
// The zero value configures unbounded capacity.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *registryOptions) {
		if capacity < 0 {
			panic("linkedlist: invalid capacity")
		}
		opts.capacity = capacity
	})
}

// WithLogger option configures the logger for registry events.
//
// The nil value discards events.
func WithLogger(l Logger) Option {
	return funcOption(func(opts *registryOptions) {
		if l == nil {
			l = logger.Discard()
		}
		opts.logger = l
	})
}

type funcOption func(*registryOptions)

func (o funcOption) apply(opts *registryOptions) {
	o(opts)
}
