package journal

import (
	"context"
	"errors"

	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/logseq"
)

// Watch re-prepares journal pages created or rewritten by another program,
// typically Logseq opening a new day. pattern selects the journal files, see
// fs.Repository.JournalPattern. Watch blocks until ctx is done.
//
// A day that fails to prepare is logged and skipped; the watch goes on.
func (p *Preparer) Watch(ctx context.Context, pattern string) error {
	events, err := p.service.Watch(ctx, pattern)
	if err != nil {
		return err
	}

	p.logger.Info("watching journals", "pattern", pattern)
	for e := range events {
		p.handle(ctx, e)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (p *Preparer) handle(ctx context.Context, e core.Event) {
	if e.Type == core.EventDelete || e.Location.Kind != core.KindJournal {
		return
	}

	day, err := logseq.ParseDayFileName(e.Location.Name)
	if err != nil {
		p.logger.Debug("ignoring journal file", "path", e.Path, "error", err)
		return
	}

	if err := p.PrepareDay(ctx, day); err != nil {
		p.logger.Warn("failed to prepare journal", "day", day.String(), "error", err)
	}
}
