package journal_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/journal"
	"github.com/aretw0/almanac/pkg/outline"
)

type graph struct {
	root    string
	repo    *fs.Repository
	service *core.Service
	out     *bytes.Buffer
}

func newGraph(t *testing.T) *graph {
	t.Helper()
	root := t.TempDir()
	repo := fs.NewRepository(fs.Config{Root: root})
	require.NoError(t, repo.Initialize(context.Background()))
	return &graph{root: root, repo: repo, service: core.NewService(repo, nil), out: &bytes.Buffer{}}
}

func (g *graph) preparer(t *testing.T, from, to calendar.Day) *journal.Preparer {
	t.Helper()
	p, err := journal.NewPreparer(g.service, from, to, journal.WithOutput(g.out))
	require.NoError(t, err)
	return p
}

func (g *graph) lines() []string {
	return strings.Split(strings.TrimSuffix(g.out.String(), "\n"), "\n")
}

func (g *graph) rel(t *testing.T, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(g.root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		files[path] = string(data)
		return err
	})
	require.NoError(t, err)
	return files
}

func TestPreparer_InvalidRange(t *testing.T) {
	g := newGraph(t)
	day := calendar.NewDay(2024, time.September, 1)

	_, err := journal.NewPreparer(g.service, day, day)
	assert.ErrorIs(t, err, core.ErrInvalidRange)

	_, err = journal.NewPreparer(g.service, day, day.Prev())
	assert.ErrorIs(t, err, core.ErrInvalidRange)
}

func TestPreparer_Run_Month(t *testing.T) {
	g := newGraph(t)
	from := calendar.NewDay(2024, time.September, 1)
	to := calendar.NewDay(2024, time.October, 1)
	p := g.preparer(t, from, to)

	require.NoError(t, p.Run(context.Background()))

	journals := listDir(t, filepath.Join(g.root, "journals"))
	assert.Len(t, journals, 31)
	assert.Contains(t, journals, "2024_09_01.md")
	assert.Contains(t, journals, "2024_10_01.md")

	assert.ElementsMatch(t, []string{
		"2024___W35.md", "2024___W36.md", "2024___W37.md",
		"2024___W38.md", "2024___W39.md", "2024___W40.md",
		"2024___September.md", "2024___October.md",
		"2024.md",
	}, listDir(t, filepath.Join(g.root, "pages")))

	lines := g.rel(t, g.lines())
	require.Len(t, lines, 40)
	assert.Equal(t, []string{
		"journals/2024_09_01.md",
		"pages/2024___W35.md",
		"pages/2024___September.md",
		"pages/2024.md",
		"journals/2024_09_02.md",
		"pages/2024___W36.md",
		"journals/2024_09_03.md",
	}, lines[:7])
	assert.Equal(t, []string{
		"journals/2024_09_30.md",
		"pages/2024___W40.md",
		"journals/2024_10_01.md",
		"pages/2024___October.md",
	}, lines[36:])

	state := p.State().(journal.PreparerState)
	assert.Equal(t, 31, state.Days)
	assert.Equal(t, 6, state.Weeks)
	assert.Equal(t, 2, state.Months)
	assert.Equal(t, 1, state.Years)
	assert.Equal(t, 0, state.Unchanged)
	assert.Equal(t, "2024/October", state.Last)
	assert.Equal(t, "preparer", p.ComponentType())
}

func TestPreparer_Run_Idempotent(t *testing.T) {
	g := newGraph(t)
	from := calendar.NewDay(2024, time.September, 1)
	to := calendar.NewDay(2024, time.October, 1)

	require.NoError(t, g.preparer(t, from, to).Run(context.Background()))
	first := snapshot(t, g.root)
	firstOut := g.out.String()

	g.out.Reset()
	p := g.preparer(t, from, to)
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, first, snapshot(t, g.root))
	assert.Equal(t, firstOut, g.out.String())
	assert.Equal(t, 40, p.State().(journal.PreparerState).Unchanged)
}

func TestPreparer_Run_AcrossYears(t *testing.T) {
	g := newGraph(t)
	p := g.preparer(t, calendar.NewDay(2024, time.December, 30), calendar.NewDay(2025, time.January, 2))

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, []string{
		"journals/2024_12_30.md",
		"pages/2025___W01.md",
		"pages/2024___December.md",
		"pages/2024.md",
		"journals/2024_12_31.md",
		"journals/2025_01_01.md",
		"pages/2025.md",
		"pages/2025___January.md",
		"journals/2025_01_02.md",
	}, g.rel(t, g.lines()))
}

func TestPreparer_Run_KeepsUserContent(t *testing.T) {
	g := newGraph(t)
	journalPath := filepath.Join(g.root, "journals", "2024_09_01.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(journalPath), 0755))
	require.NoError(t, os.WriteFile(journalPath, []byte("mood:: fine\n\n- my note\n  continued\n"), 0644))

	p := g.preparer(t, calendar.NewDay(2024, time.September, 1), calendar.NewDay(2024, time.September, 2))
	require.NoError(t, p.Run(context.Background()))

	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	assert.Equal(t, `mood:: fine
filters:: {"2024/w35" false, "2024/september" false}
day:: Sunday
week:: [[2024/W35]]

-
- my note
  continued
`, string(data))
}

func TestPreparer_Run_StopsOnMalformedPage(t *testing.T) {
	g := newGraph(t)
	yearPath := filepath.Join(g.root, "pages", "2024.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(yearPath), 0755))
	require.NoError(t, os.WriteFile(yearPath, []byte("Just some prose\n"), 0644))

	p := g.preparer(t, calendar.NewDay(2024, time.September, 1), calendar.NewDay(2024, time.October, 1))
	err := p.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, outline.ErrMalformedMetadata)
	assert.Contains(t, err.Error(), "year 2024")

	// Pages before the year were written, nothing after.
	assert.Len(t, g.lines(), 3)
	assert.NoFileExists(t, filepath.Join(g.root, "journals", "2024_09_02.md"))

	data, err := os.ReadFile(yearPath)
	require.NoError(t, err)
	assert.Equal(t, "Just some prose\n", string(data))
}

func TestPreparer_Run_Canceled(t *testing.T) {
	g := newGraph(t)
	p := g.preparer(t, calendar.NewDay(2024, time.September, 1), calendar.NewDay(2024, time.October, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.State().(journal.PreparerState).Days)
}

func TestPreparer_PrepareDay(t *testing.T) {
	g := newGraph(t)
	p := g.preparer(t, calendar.NewDay(2024, time.September, 1), calendar.NewDay(2024, time.October, 1))

	require.NoError(t, p.PrepareDay(context.Background(), calendar.NewDay(2024, time.September, 3)))

	assert.Equal(t, []string{"journals/2024_09_03.md"}, g.rel(t, g.lines()))
	assert.NoDirExists(t, filepath.Join(g.root, "pages"))
}

func TestPreparer_Run_CustomSyntaxIsIdempotent(t *testing.T) {
	root := t.TempDir()
	syntax := outline.Syntax{Bullet: "*", Separator: ":"}
	repo := fs.NewRepository(fs.Config{Root: root, Syntax: syntax})
	require.NoError(t, repo.Initialize(context.Background()))
	svc := core.NewService(repo, nil)

	run := func() *journal.Preparer {
		p, err := journal.NewPreparer(svc,
			calendar.NewDay(2024, time.September, 1), calendar.NewDay(2024, time.September, 3),
			journal.WithSyntax(syntax))
		require.NoError(t, err)
		require.NoError(t, p.Run(context.Background()))
		return p
	}

	run()
	first := snapshot(t, root)

	second := run().State().(journal.PreparerState)
	assert.Equal(t, 7, second.Unchanged)
	assert.Equal(t, first, snapshot(t, root))

	month := first[filepath.Join(root, "pages", "2024___September.md")]
	assert.Equal(t, 1, strings.Count(month, "{{embed [[2024-09-01]]}}"))
	assert.True(t, strings.HasPrefix(month, "filters: {\"month\" false}\n"), month)
	assert.Contains(t, month, "\n\n*\n* {{embed [[2024-09-01]]}}\n")
}
