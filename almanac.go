package almanac

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
)

// --- Types ---

// Day is a calendar day.
type Day = calendar.Day

// Graph is a Logseq graph opened for preparation.
type Graph = platform.Graph

// Config is the content of the optional .almanac.yaml file.
type Config = platform.Config

// --- Errors ---

var (
	// ErrInvalidRange is returned when the end of the range is not after its start.
	ErrInvalidRange = core.ErrInvalidRange
	// ErrRootNotFound is returned when no graph root is found.
	ErrRootNotFound = platform.ErrRootNotFound
	// ErrInvalidConfig is returned when .almanac.yaml cannot be decoded.
	ErrInvalidConfig = platform.ErrInvalidConfig
)

// ConfigFile is the name of the optional per-graph configuration file.
const ConfigFile = platform.ConfigFile

// --- Configuration ---

// Option defines a functional option for configuring almanac.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithOutput sets where prepared page paths are printed.
func WithOutput(w io.Writer) Option {
	return platform.WithOutput(w)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithConfig replaces the .almanac.yaml file of the graph.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithVersioning enables or disables committing prepared pages with git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithDryRun prints what would be prepared without writing anything.
func WithDryRun(enabled bool) Option {
	return platform.WithDryRun(enabled)
}

// WithMustExist ensures the graph directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithWatcherErrorHandler registers a callback for errors raised while watching.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open wires the services of the graph at root.
func Open(root string, opts ...Option) (*Graph, error) {
	return platform.Open(root, opts...)
}

// Init writes a default .almanac.yaml into root and returns its path.
func Init(root string, cfg Config) (string, error) {
	return platform.Init(root, cfg)
}

// --- Operations ---

// Prepare stores the calendar pages of the days from through to.
func Prepare(ctx context.Context, root string, from, to Day, opts ...Option) error {
	return platform.Prepare(ctx, root, from, to, opts...)
}

// Watch prepares journal pages created by Logseq until ctx is done.
func Watch(ctx context.Context, root string, opts ...Option) error {
	return platform.Watch(ctx, root, opts...)
}

// --- Utils ---

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	return calendar.ParseDay(s)
}

// Today returns the current day in local time.
func Today() Day {
	return calendar.Today()
}

// FindGraphRoot looks upwards from startDir for a directory holding logseq/
// or .almanac.yaml.
func FindGraphRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
