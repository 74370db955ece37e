package platform

import (
	"io"
	"log/slog"

	"github.com/aretw0/almanac/pkg/core"
)

// options holds the internal configuration for opening a graph.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	output       io.Writer
	config       *Config
	versioning   *bool
	dryRun       bool
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for opening a graph.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		output: io.Discard,
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where prepared page paths are printed.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithRepository injects a storage adapter instead of the filesystem one.
// Layout settings from the config file are ignored in that case.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithConfig replaces the config file of the graph.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = &cfg
	}
}

// WithVersioning enables or disables committing prepared pages with git.
// When not set, the "commit" key of the config file decides.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = &enabled
	}
}

// WithDryRun reports what would be prepared without writing anything.
func WithDryRun(enabled bool) Option {
	return func(o *options) {
		o.dryRun = enabled
	}
}

// WithMustExist fails when the graph directory does not exist yet.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
