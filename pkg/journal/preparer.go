package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/logseq"
	"github.com/aretw0/almanac/pkg/outline"
)

// Preparer stores the calendar pages of every day from From to To.
type Preparer struct {
	From calendar.Day
	To   calendar.Day

	service *core.Service
	syntax  outline.Syntax
	console io.Writer
	logger  *slog.Logger

	mu        sync.RWMutex
	prepared  map[calendar.Kind]int
	unchanged int
	last      string
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithOutput sets where the path of each prepared page is printed.
// Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(p *Preparer) {
		p.console = w
	}
}

// WithSyntax sets the outline syntax of generated bullets. It must match the
// syntax the repository parses pages with. Defaults to outline.DefaultSyntax.
func WithSyntax(s outline.Syntax) Option {
	return func(p *Preparer) {
		p.syntax = s
	}
}

// WithLogger sets the logger of the Preparer.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Preparer) {
		p.logger = logger
	}
}

// NewPreparer returns a Preparer for the days from through to. It fails with
// core.ErrInvalidRange unless to is after from.
func NewPreparer(service *core.Service, from, to calendar.Day, opts ...Option) (*Preparer, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: --from %s should be less than --to %s", core.ErrInvalidRange, from, to)
	}

	p := &Preparer{
		From:     from,
		To:       to,
		service:  service,
		syntax:   outline.DefaultSyntax,
		console:  io.Discard,
		prepared: make(map[calendar.Kind]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

// Run prepares the first day together with its week, month and year, then
// walks forward one day at a time until To, preparing each day and then any
// week, year or month it enters, in that order. The first failure stops the
// run.
func (p *Preparer) Run(ctx context.Context) error {
	day := p.From
	week, month, year := day.Week(), day.Month(), day.Year()

	p.logger.Info("preparing journal", "from", p.From.String(), "to", p.To.String())

	for _, u := range []calendar.Unit{day, week, month, year} {
		if err := p.prepare(ctx, u); err != nil {
			return err
		}
	}

	for day.Before(p.To) {
		if err := ctx.Err(); err != nil {
			return err
		}
		day = day.Next()

		if err := p.prepare(ctx, day); err != nil {
			return err
		}
		if w := day.Week(); w != week {
			if err := p.prepare(ctx, w); err != nil {
				return err
			}
			week = w
		}
		if y := day.Year(); y != year {
			if err := p.prepare(ctx, y); err != nil {
				return err
			}
			year = y
		}
		if m := day.Month(); m != month {
			if err := p.prepare(ctx, m); err != nil {
				return err
			}
			month = m
		}
	}
	return nil
}

// PrepareDay stores the journal page of a single day.
func (p *Preparer) PrepareDay(ctx context.Context, day calendar.Day) error {
	return p.prepare(ctx, day)
}

func (p *Preparer) prepare(ctx context.Context, u calendar.Unit) error {
	res, err := p.service.Store(ctx, PageFor(u, p.syntax))
	if err != nil {
		return fmt.Errorf("failed to prepare %s %s: %w", u.Kind(), logseq.Name(u), err)
	}

	p.mu.Lock()
	p.prepared[u.Kind()]++
	if !res.Changed {
		p.unchanged++
	}
	p.last = logseq.Name(u)
	p.mu.Unlock()

	p.logger.Debug("page prepared", "kind", u.Kind().String(), "name", logseq.Name(u), "changed", res.Changed)
	if _, err := fmt.Fprintln(p.console, res.Path); err != nil {
		return fmt.Errorf("failed to report %s: %w", res.Path, err)
	}
	return nil
}
