// Package fs stores pages as files inside a Logseq graph directory.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/git"
	"github.com/aretw0/almanac/pkg/outline"
)

// Default layout of a Logseq graph.
const (
	DefaultJournalsDir = "journals"
	DefaultPagesDir    = "pages"
	DefaultExtension   = ".md"
)

// Config holds the configuration for the filesystem repository.
type Config struct {
	Root        string
	JournalsDir string // relative to Root, e.g. "journals"
	PagesDir    string // relative to Root, e.g. "pages"
	Extension   string // e.g. ".md"
	Syntax      outline.Syntax
	// MustExist fails Initialize when Root is missing instead of creating it.
	MustExist bool
	// DryRun computes results without touching the disk.
	DryRun bool
	// Versioning enables Commit through git.
	Versioning   bool
	Logger       *slog.Logger
	ErrorHandler func(error)
}

// Repository implements core.Repository on top of the filesystem.
type Repository struct {
	Root   string
	git    *git.Client
	config Config

	mu            sync.RWMutex
	written       int
	unchanged     int
	commits       int
	watcherActive bool
}

// NewRepository creates a new filesystem-backed repository, filling in
// defaults for empty layout fields.
func NewRepository(config Config) *Repository {
	if config.JournalsDir == "" {
		config.JournalsDir = DefaultJournalsDir
	}
	if config.PagesDir == "" {
		config.PagesDir = DefaultPagesDir
	}
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if config.Syntax == (outline.Syntax{}) {
		config.Syntax = outline.DefaultSyntax
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		Root:   config.Root,
		git:    git.NewClient(config.Root, config.Logger),
		config: config,
	}
}

// Initialize checks the graph root and, when versioning is enabled, that it
// is a git work tree.
func (r *Repository) Initialize(ctx context.Context) error {
	info, err := os.Stat(r.Root)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("graph path is not a directory: %s", r.Root)
	case errors.Is(err, iofs.ErrNotExist):
		if r.config.MustExist {
			return fmt.Errorf("graph path does not exist: %s", r.Root)
		}
		if !r.config.DryRun {
			if err := os.MkdirAll(r.Root, 0755); err != nil {
				return fmt.Errorf("failed to create graph directory: %w", err)
			}
		}
	case err != nil:
		return fmt.Errorf("failed to stat graph path: %w", err)
	}

	if r.config.Versioning {
		if !git.IsInstalled() {
			return fmt.Errorf("git is not installed")
		}
		if !r.git.IsRepo(ctx) {
			return fmt.Errorf("graph is not a git repository: %s", r.Root)
		}
	}
	return nil
}

// Dir returns the directory holding pages of the given kind.
func (r *Repository) Dir(kind core.Kind) string {
	if kind == core.KindJournal {
		return filepath.Join(r.Root, r.config.JournalsDir)
	}
	return filepath.Join(r.Root, r.config.PagesDir)
}

// Path implements core.Repository.
func (r *Repository) Path(loc core.Location) string {
	return filepath.Join(r.Dir(loc.Kind), loc.Name+r.config.Extension)
}

// Load implements core.Repository. A missing file is not an error; a file
// that cannot be read or parsed is.
func (r *Repository) Load(ctx context.Context, loc core.Location) (outline.Document, bool, error) {
	path := r.Path(loc)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return outline.Document{}, false, nil
		}
		return outline.Document{}, false, fmt.Errorf("%w %s: %w", core.ErrReadPage, path, err)
	}

	doc, err := r.config.Syntax.Parse(bytes.NewReader(data))
	if err != nil {
		return outline.Document{}, false, fmt.Errorf("failed to parse page %s: %w", path, err)
	}
	return doc, true, nil
}

// Save implements core.Repository. The file is replaced atomically; when the
// rendered content matches the file byte for byte nothing is written.
func (r *Repository) Save(ctx context.Context, loc core.Location, doc outline.Document) (core.SaveResult, error) {
	path := r.Path(loc)
	data := []byte(r.config.Syntax.Format(doc))

	// An unreadable current file is simply rewritten; the write reports the
	// real failure.
	current, err := os.ReadFile(path)
	res := core.SaveResult{Path: path, Changed: err != nil || !bytes.Equal(current, data)}

	if !res.Changed || r.config.DryRun {
		r.record(res)
		return res, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.SaveResult{}, fmt.Errorf("%w %s: %w", core.ErrWritePage, path, err)
	}
	if err := replaceFile(path, data); err != nil {
		return core.SaveResult{}, fmt.Errorf("%w %s: %w", core.ErrWritePage, path, err)
	}

	r.config.Logger.Debug("page written", "path", path, "bytes", len(data))
	r.record(res)
	return res, nil
}

func (r *Repository) record(res core.SaveResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.Changed {
		r.written++
	} else {
		r.unchanged++
	}
}

// Commit implements core.Committer. Paths are the ones returned by Path.
func (r *Repository) Commit(ctx context.Context, msg string, paths ...string) error {
	if !r.config.Versioning {
		return fmt.Errorf("commit: %w", core.ErrNotSupported)
	}
	if r.config.DryRun || len(paths) == 0 {
		return nil
	}

	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		rp, err := filepath.Rel(r.Root, p)
		if err != nil {
			return fmt.Errorf("path %s outside graph: %w", p, err)
		}
		rel = append(rel, filepath.ToSlash(rp))
	}

	unlock, err := r.git.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	if err := r.git.Add(ctx, rel...); err != nil {
		return fmt.Errorf("failed to git add: %w", err)
	}

	status, err := r.git.Status(ctx, rel...)
	if err != nil {
		return fmt.Errorf("failed to git status: %w", err)
	}
	if status == "" {
		r.config.Logger.Debug("pages already committed", "count", len(rel))
		return nil
	}

	if err := r.git.Commit(ctx, msg, rel...); err != nil {
		return fmt.Errorf("failed to git commit: %w", err)
	}

	r.mu.Lock()
	r.commits++
	r.mu.Unlock()
	r.config.Logger.Info("pages committed", "count", len(rel))
	return nil
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Committer  = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)
