package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/git"
)

// Prepare stores the calendar pages from through to in the graph at root,
// then commits the changed pages when versioning is enabled.
func Prepare(ctx context.Context, root string, from, to calendar.Day, opts ...Option) error {
	g, err := Open(root, opts...)
	if err != nil {
		return err
	}

	p, err := g.Preparer(from, to)
	if err != nil {
		return err
	}
	if err := p.Run(ctx); err != nil {
		return err
	}

	if !g.Versioning {
		return nil
	}
	msg := git.FormatChangeReason(git.CommitTypeChore, "journal", fmt.Sprintf("prepare %s to %s", from, to), "")
	if err := g.Service.Commit(ctx, msg); err != nil {
		return fmt.Errorf("failed to commit prepared pages: %w", err)
	}
	return nil
}

// Watch prepares every journal page created or rewritten in the graph at
// root until ctx is done.
func Watch(ctx context.Context, root string, opts ...Option) error {
	g, err := Open(root, opts...)
	if err != nil {
		return err
	}

	today := calendar.Today()
	p, err := g.Preparer(today, today.Next())
	if err != nil {
		return err
	}
	return p.Watch(ctx, g.JournalPattern())
}

// Init writes a config file with the default layout to root. It fails when
// one already exists.
func Init(root string, cfg Config) (string, error) {
	if hasFile(root, ConfigFile) {
		return "", fmt.Errorf("%s already exists in %s", ConfigFile, root)
	}
	if err := cfg.validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Save(root); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return filepath.Join(root, ConfigFile), nil
}
