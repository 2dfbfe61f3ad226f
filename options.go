package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig adds a module that loads the YAML file at filename and provides *config.Document.
// The filename may contain "{env}", replaced by the environment set with config.WithEnvironment.
// An empty filename loads "config.yaml".
func WithConfig(filename string, opts ...config.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, NewConfigModule(filename, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
