package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/almanac/pkg/outline"
)

// Service merges generated pages into stored ones.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu        sync.RWMutex
	stored    int
	unchanged int
	pending   []string
}

// NewService creates a new Service. A nil logger discards debug output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Repository returns the underlying repository.
func (s *Service) Repository() Repository {
	return s.repo
}

// Store writes page, merged on top of the stored version if one exists.
//
// The stored document is the base of the merge: its bullets keep their order
// and generated bullets are only appended when new, while generated metadata
// overwrites stored values. A stored page that fails to parse aborts the
// store so user content is never replaced.
func (s *Service) Store(ctx context.Context, page *Page) (SaveResult, error) {
	doc := page.Document

	existing, found, err := s.repo.Load(ctx, page.Location)
	if err != nil {
		return SaveResult{}, err
	}
	if found {
		doc = outline.Combine(existing, doc)
	}

	res, err := s.repo.Save(ctx, page.Location, doc)
	if err != nil {
		return SaveResult{}, err
	}

	s.logger.Debug("page stored", "location", page.Location.String(), "path", res.Path, "existed", found, "changed", res.Changed)

	s.mu.Lock()
	s.stored++
	if res.Changed {
		s.pending = append(s.pending, res.Path)
	} else {
		s.unchanged++
	}
	s.mu.Unlock()

	return res, nil
}

// Commit records every page changed since the last commit, when the
// repository supports it.
func (s *Service) Commit(ctx context.Context, msg string) error {
	c, ok := s.repo.(Committer)
	if !ok {
		return fmt.Errorf("commit: %w", ErrNotSupported)
	}

	s.mu.Lock()
	paths := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(paths) == 0 {
		s.logger.Debug("nothing to commit")
		return nil
	}
	if err := c.Commit(ctx, msg, paths...); err != nil {
		s.mu.Lock()
		s.pending = append(paths, s.pending...)
		s.mu.Unlock()
		return err
	}
	return nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, fmt.Errorf("watch: %w", ErrNotSupported)
	}
	return w.Watch(ctx, pattern)
}
