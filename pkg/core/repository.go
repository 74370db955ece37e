package core

import (
	"context"

	"github.com/aretw0/almanac/pkg/outline"
)

// Repository defines the contract for loading and storing pages.
type Repository interface {
	// Path returns where the page at loc is stored.
	Path(loc Location) string

	// Load reads and parses the page at loc. The boolean is false when no
	// page exists yet. A page that exists but cannot be parsed is an error.
	Load(ctx context.Context, loc Location) (outline.Document, bool, error)

	// Save replaces the page at loc with doc.
	Save(ctx context.Context, loc Location, doc outline.Document) (SaveResult, error)

	// Initialize ensures the underlying storage is ready.
	Initialize(ctx context.Context) error
}

// Committer is implemented by repositories backed by version control.
type Committer interface {
	// Commit records the given paths with msg. It is a no-op when none of
	// them changed.
	Commit(ctx context.Context, msg string, paths ...string) error
}

// Watchable is implemented by repositories that can report changes made by
// other programs.
type Watchable interface {
	// Watch emits events for pages matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
