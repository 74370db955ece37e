package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/journal"
)

// defaultJournalPattern is used when the repository was injected.
const defaultJournalPattern = fs.DefaultJournalsDir + "/*" + fs.DefaultExtension

// Graph is a Logseq graph opened for preparation.
type Graph struct {
	Root       string
	Config     Config
	Service    *core.Service
	Versioning bool

	pattern string
	logger  *slog.Logger
	output  io.Writer
}

// Open wires the repository and service of the graph at root.
//
//	g, err := platform.Open("./graph", platform.WithDryRun(true))
func Open(root string, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	cfg := Config{}
	if o.config != nil {
		cfg = *o.config
	} else if o.repository == nil {
		loaded, err := LoadConfig(root)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	versioning := cfg.Commit
	if o.versioning != nil {
		versioning = *o.versioning
	}

	g := &Graph{
		Root:       root,
		Config:     cfg,
		Versioning: versioning,
		pattern:    defaultJournalPattern,
		logger:     o.logger,
		output:     o.output,
	}

	repo := o.repository
	if repo == nil {
		fsCfg := cfg.fsConfig(root)
		fsCfg.DryRun = o.dryRun
		fsCfg.MustExist = o.mustExist
		fsCfg.Versioning = versioning
		fsCfg.Logger = o.logger
		fsCfg.ErrorHandler = o.errorHandler

		fsRepo := fs.NewRepository(fsCfg)
		g.pattern = fsRepo.JournalPattern()
		repo = fsRepo
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	g.Service = core.NewService(repo, o.logger)
	return g, nil
}

// Preparer returns a journal.Preparer over the days from through to,
// printing to the configured output. Generated bullets use the syntax of
// the config file, the one the repository stores pages with.
func (g *Graph) Preparer(from, to calendar.Day) (*journal.Preparer, error) {
	return journal.NewPreparer(g.Service, from, to,
		journal.WithSyntax(g.Config.Syntax()),
		journal.WithOutput(g.output),
		journal.WithLogger(g.logger),
	)
}

// JournalPattern returns the glob matching journal files, relative to Root.
func (g *Graph) JournalPattern() string {
	return g.pattern
}
