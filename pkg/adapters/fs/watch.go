package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/almanac/pkg/core"
)

// JournalPattern returns the glob, relative to the graph root, matching
// journal files.
func (r *Repository) JournalPattern() string {
	return filepath.ToSlash(r.config.JournalsDir) + "/*" + r.config.Extension
}

// Watch implements core.Watchable. It reports changes to files matching
// pattern, a doublestar glob relative to the graph root. The returned
// channel is closed when ctx is done or the watcher fails.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	added := 0
	for _, kind := range []core.Kind{core.KindJournal, core.KindPage} {
		dir := r.Dir(kind)
		if _, err := os.Stat(dir); errors.Is(err, iofs.ErrNotExist) {
			r.config.Logger.Debug("skipping missing directory", "dir", dir)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		added++
	}
	if added == 0 {
		_ = watcher.Close()
		return nil, fmt.Errorf("nothing to watch under %s", r.Root)
	}

	events := make(chan core.Event)
	w := &watchWorker{repo: r, pattern: pattern, watcher: watcher, events: events}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.reportError(fmt.Errorf("watcher: %w", err))
	}))

	return events, nil
}

func (r *Repository) reportError(err error) {
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
		return
	}
	r.config.Logger.Error("watch failed", "error", err)
}

type watchWorker struct {
	repo    *Repository
	pattern string
	watcher *fsnotify.Watcher
	events  chan<- core.Event
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			select {
			case w.events <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.reportError(err)
		}
	}
}

// translate filters an fsnotify event and maps it to a core.Event.
func (w *watchWorker) translate(event fsnotify.Event) (core.Event, bool) {
	logger := w.repo.config.Logger
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return core.Event{}, false
	}

	rel, err := filepath.Rel(w.repo.Root, event.Name)
	if err != nil {
		return core.Event{}, false
	}
	rel = filepath.ToSlash(rel)
	if ok, err := doublestar.Match(w.pattern, rel); err != nil || !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	kind := core.KindPage
	if filepath.Dir(event.Name) == filepath.Clean(w.repo.Dir(core.KindJournal)) {
		kind = core.KindJournal
	}

	logger.Debug("event received", "type", eType, "path", event.Name)
	return core.Event{
		Type:      eType,
		Location:  core.Location{Kind: kind, Name: strings.TrimSuffix(base, w.repo.config.Extension)},
		Path:      event.Name,
		Timestamp: time.Now().Unix(),
	}, true
}
