package journal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/journal"
	"github.com/aretw0/almanac/pkg/outline"
)

func TestDayPage(t *testing.T) {
	page := journal.DayPage(calendar.NewDay(2024, time.September, 1))

	assert.Equal(t, core.Location{Kind: core.KindJournal, Name: "2024_09_01"}, page.Location)
	assert.Equal(t, `filters:: {"2024/w35" false, "2024/september" false}
day:: Sunday
week:: [[2024/W35]]

`, page.Document.String())
}

func TestWeekPage(t *testing.T) {
	page := journal.WeekPage(calendar.Week{Year: 2024, Number: 35}, outline.DefaultSyntax)

	assert.Equal(t, core.Location{Kind: core.KindPage, Name: "2024___W35"}, page.Location)
	assert.Equal(t, `filters:: {"week" false, "month" false}
month:: [[2024/August]]
next:: [[2024/W36]]
prev:: [[2024/W34]]

-
- {{embed [[2024-08-26]]}}
- {{embed [[2024-08-27]]}}
- {{embed [[2024-08-28]]}}
- {{embed [[2024-08-29]]}}
- {{embed [[2024-08-30]]}}
- {{embed [[2024-08-31]]}}
- {{embed [[2024-09-01]]}}
`, page.Document.String())
}

func TestWeekPage_AcrossYears(t *testing.T) {
	page := journal.WeekPage(calendar.Week{Year: 2025, Number: 1}, outline.DefaultSyntax)

	assert.Equal(t, "2025___W01", page.Name)
	month, _ := page.Document.Get(journal.KeyMonth)
	assert.Equal(t, "[[2024/December]]", month)
	prev, _ := page.Document.Get(journal.KeyPrev)
	assert.Equal(t, "[[2024/W52]]", prev)
	assert.Equal(t, "- {{embed [[2024-12-30]]}}", page.Document.Outline[0])
	assert.Equal(t, "- {{embed [[2025-01-05]]}}", page.Document.Outline[6])
}

func TestMonthPage(t *testing.T) {
	page := journal.MonthPage(calendar.Month{Year: 2024, Month: time.February}, outline.DefaultSyntax)

	assert.Equal(t, core.Location{Kind: core.KindPage, Name: "2024___February"}, page.Location)
	filters, _ := page.Document.Get(journal.KeyFilters)
	assert.Equal(t, `{"month" false}`, filters)
	next, _ := page.Document.Get(journal.KeyNext)
	assert.Equal(t, "[[2024/March]]", next)
	prev, _ := page.Document.Get(journal.KeyPrev)
	assert.Equal(t, "[[2024/January]]", prev)

	assert.Len(t, page.Document.Outline, 29)
	assert.Equal(t, "- {{embed [[2024-02-01]]}}", page.Document.Outline[0])
	assert.Equal(t, "- {{embed [[2024-02-29]]}}", page.Document.Outline[28])
}

func TestMonthPage_CustomBullet(t *testing.T) {
	syntax := outline.Syntax{Bullet: "*", Separator: ":"}
	page := journal.MonthPage(calendar.Month{Year: 2024, Month: time.September}, syntax)

	assert.Equal(t, "* {{embed [[2024-09-01]]}}", page.Document.Outline[0])

	text := syntax.Format(page.Document)
	assert.True(t, strings.HasPrefix(text, "filters: {\"month\" false}\nnext: [[2024/October]]\nprev: [[2024/August]]\n\n*\n* {{embed"), text)

	parsed, err := syntax.Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, page.Document.Metadata, parsed.Metadata)
	assert.Equal(t, append([]string{"*"}, page.Document.Outline...), parsed.Outline)
	assert.True(t, outline.Combine(parsed, page.Document).Equal(parsed))
}

func TestYearPage(t *testing.T) {
	page := journal.YearPage(calendar.Year(2024), outline.DefaultSyntax)

	assert.Equal(t, core.Location{Kind: core.KindPage, Name: "2024"}, page.Location)
	assert.Equal(t, `next:: [[2025]]
prev:: [[2023]]

-
- [[2024/January]]
- [[2024/February]]
- [[2024/March]]
- [[2024/April]]
- [[2024/May]]
- [[2024/June]]
- [[2024/July]]
- [[2024/August]]
- [[2024/September]]
- [[2024/October]]
- [[2024/November]]
- [[2024/December]]
`, page.Document.String())
}

func TestPageFor(t *testing.T) {
	day := calendar.NewDay(2024, time.September, 1)

	tests := []struct {
		unit calendar.Unit
		want core.Location
	}{
		{day, core.Location{Kind: core.KindJournal, Name: "2024_09_01"}},
		{day.Week(), core.Location{Kind: core.KindPage, Name: "2024___W35"}},
		{day.Month(), core.Location{Kind: core.KindPage, Name: "2024___September"}},
		{day.Year(), core.Location{Kind: core.KindPage, Name: "2024"}},
	}
	for _, tt := range tests {
		t.Run(tt.unit.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, journal.PageFor(tt.unit, outline.DefaultSyntax).Location)
		})
	}
}
