package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Root          string `json:"root"`
	JournalsDir   string `json:"journals_dir"`
	PagesDir      string `json:"pages_dir"`
	Extension     string `json:"extension"`
	DryRun        bool   `json:"dry_run"`
	Versioning    bool   `json:"versioning"`
	Written       int    `json:"written"`
	Unchanged     int    `json:"unchanged"`
	Commits       int    `json:"commits"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Root:          r.Root,
		JournalsDir:   r.config.JournalsDir,
		PagesDir:      r.config.PagesDir,
		Extension:     r.config.Extension,
		DryRun:        r.config.DryRun,
		Versioning:    r.config.Versioning,
		Written:       r.written,
		Unchanged:     r.unchanged,
		Commits:       r.commits,
		WatcherActive: r.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
