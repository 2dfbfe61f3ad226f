package config

import "log/slog"

// DefaultSeparator separates path segments unless WithSeparator says otherwise.
const DefaultSeparator = "/"

// Options holds the settings of a Document.
type Options struct {
	Separator   string
	Environment string
	Logger      *slog.Logger
}

// Option defines a function type for applying Document options.
type Option func(*Options)

// NewOptions returns the defaults with opts applied in order.
func NewOptions(opts ...Option) Options {
	options := Options{
		Separator:   DefaultSeparator,
		Environment: "",
		Logger:      nil,
	}

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// WithSeparator sets the delimiter between path segments.
func WithSeparator(separator string) Option {
	return func(opts *Options) {
		opts.Separator = separator
	}
}

// WithEnvironment tags the Document with an environment name such as "production".
// An empty name means no environment.
func WithEnvironment(env string) Option {
	return func(opts *Options) {
		opts.Environment = env
	}
}

// WithLogger sets the logger used for load and lookup diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
