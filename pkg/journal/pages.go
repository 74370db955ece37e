package journal

import (
	"fmt"

	"github.com/aretw0/almanac/pkg/calendar"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/logseq"
	"github.com/aretw0/almanac/pkg/outline"
)

// Property keys written on generated pages.
const (
	KeyFilters = "filters"
	KeyDay     = "day"
	KeyWeek    = "week"
	KeyMonth   = "month"
	KeyNext    = "next"
	KeyPrev    = "prev"
)

// PageFor builds the generated page of u. Outline entries use the bullet
// of s, which must match the syntax the page is stored with.
func PageFor(u calendar.Unit, s outline.Syntax) *core.Page {
	switch v := u.(type) {
	case calendar.Day:
		return DayPage(v)
	case calendar.Week:
		return WeekPage(v, s)
	case calendar.Month:
		return MonthPage(v, s)
	case calendar.Year:
		return YearPage(v, s)
	default:
		panic(fmt.Sprintf("journal: unsupported calendar unit %T", u))
	}
}

// DayPage builds the journal page of d. It hides the references coming from
// its own week and month pages and carries no outline.
func DayPage(d calendar.Day) *core.Page {
	page := core.NewPage(core.KindJournal, logseq.FileName(d))
	doc := &page.Document

	filters := logseq.Filters{}.
		Push(logseq.Name(d.Week()), false).
		Push(logseq.Name(d.Month()), false)

	doc.Set(KeyFilters, filters.String())
	doc.Set(KeyDay, d.Weekday().String())
	doc.Set(KeyWeek, logseq.LinkTo(d.Week()))
	return page
}

// WeekPage builds the page of w, embedding its seven days.
func WeekPage(w calendar.Week, s outline.Syntax) *core.Page {
	page := core.NewPage(core.KindPage, logseq.FileName(w))
	doc := &page.Document

	doc.Set(KeyFilters, logseq.Filters{}.Push("week", false).Push("month", false).String())
	doc.Set(KeyMonth, logseq.LinkTo(w.First().Month()))
	doc.Set(KeyNext, logseq.LinkTo(w.Next()))
	doc.Set(KeyPrev, logseq.LinkTo(w.Prev()))

	for _, d := range calendar.Days(w.First(), w.Last()) {
		doc.AppendRaw(s.Entry(logseq.EmbedOf(d)))
	}
	return page
}

// MonthPage builds the page of m, embedding every day of the month.
func MonthPage(m calendar.Month, s outline.Syntax) *core.Page {
	page := core.NewPage(core.KindPage, logseq.FileName(m))
	doc := &page.Document

	doc.Set(KeyFilters, logseq.Filters{}.Push("month", false).String())
	doc.Set(KeyNext, logseq.LinkTo(m.Next()))
	doc.Set(KeyPrev, logseq.LinkTo(m.Prev()))

	for _, d := range calendar.Days(m.First(), m.Last()) {
		doc.AppendRaw(s.Entry(logseq.EmbedOf(d)))
	}
	return page
}

// YearPage builds the page of y, linking its twelve months.
func YearPage(y calendar.Year, s outline.Syntax) *core.Page {
	page := core.NewPage(core.KindPage, logseq.FileName(y))
	doc := &page.Document

	doc.Set(KeyNext, logseq.LinkTo(y.Next()))
	doc.Set(KeyPrev, logseq.LinkTo(y.Prev()))

	for _, m := range y.Months() {
		doc.AppendRaw(s.Entry(logseq.LinkTo(m)))
	}
	return page
}
