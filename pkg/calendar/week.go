package calendar

import (
	"fmt"
	"time"
)

// Week is an ISO 8601 week. Year is the ISO week-year, which differs from the
// calendar year for a few days around January 1st.
type Week struct {
	Year   int
	Number int
}

func (w Week) Kind() Kind { return KindWeek }

func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Number)
}

// First returns the Monday of w.
func (w Week) First() Day {
	// January 4th always belongs to ISO week 1.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	return DayOf(jan4).AddDays(-offset + (w.Number-1)*7)
}

// Last returns the Sunday of w.
func (w Week) Last() Day {
	return w.First().AddDays(6)
}

// Next returns the week containing the day after w's Sunday.
func (w Week) Next() Week {
	return w.Last().Next().Week()
}

// Prev returns the week containing the day before w's Monday.
func (w Week) Prev() Week {
	return w.First().Prev().Week()
}

func (w Week) Compare(o Week) int {
	if w.Year != o.Year {
		return sign(w.Year - o.Year)
	}
	return sign(w.Number - o.Number)
}

func (w Week) Before(o Week) bool { return w.Compare(o) < 0 }
func (w Week) After(o Week) bool  { return w.Compare(o) > 0 }
